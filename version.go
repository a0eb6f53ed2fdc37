package main

// _version is the version of code2img.
//
// This is set at build time with:
//
//	-ldflags "-X main._version=1.2.3"
var _version = "dev"
