// Package common holds path and content helpers shared by the CLI, the
// project builder and the language server.
package common

import (
	"net/url"
	"path/filepath"
	"runtime"
	"strings"
)

// FilePathClean is a combination of filepath.Clean and filepath.ToSlash
//
// Example:
//
//	C:\H\ -> C:/H
func FilePathClean(p string) string {
	cleaned := filepath.Clean(p)
	return filepath.ToSlash(cleaned)
}

func FilePathToURI(path string) string {
	path = FilePathClean(path)
	u := url.URL{Scheme: "file", Path: path}
	if runtime.GOOS == "windows" {
		// file:///C:/path
		u.Path = "/" + path
	}
	return u.String()
}

// URIToFilePath is the inverse of FilePathToURI. Anything that is not a
// file URI is returned unchanged.
func URIToFilePath(uri string) string {
	u, err := url.Parse(uri)
	if err != nil || u.Scheme != "file" {
		return uri
	}
	p := u.Path
	if runtime.GOOS == "windows" {
		p = strings.TrimPrefix(p, "/")
	}
	return filepath.FromSlash(p)
}

// SwapExt replaces the extension of path with ext (".rs", ".kr").
func SwapExt(path, ext string) string {
	return strings.TrimSuffix(path, filepath.Ext(path)) + ext
}
