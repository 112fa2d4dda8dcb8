/*
 * MIT License
 *
 * Copyright (c) 2026 Nicolas JUHEL
 *
 * Permission is hereby granted, free of charge, to any person obtaining a copy
 * of this software and associated documentation files (the "Software"), to deal
 * in the Software without restriction, including without limitation the rights
 * to use, copy, modify, merge, publish, distribute, sublicense, and/or sell
 * copies of the Software, and to permit persons to whom the Software is
 * furnished to do so, subject to the following conditions:
 *
 * The above copyright notice and this permission notice shall be included in all
 * copies or substantial portions of the Software.
 *
 * THE SOFTWARE IS PROVIDED "AS IS", WITHOUT WARRANTY OF ANY KIND, EXPRESS OR
 * IMPLIED, INCLUDING BUT NOT LIMITED TO THE WARRANTIES OF MERCHANTABILITY,
 * FITNESS FOR A PARTICULAR PURPOSE AND NONINFRINGEMENT. IN NO EVENT SHALL THE
 * AUTHORS OR COPYRIGHT HOLDERS BE LIABLE FOR ANY CLAIM, DAMAGES OR OTHER
 * LIABILITY, WHETHER IN AN ACTION OF CONTRACT, TORT OR OTHERWISE, ARISING FROM,
 * OUT OF OR IN CONNECTION WITH THE SOFTWARE OR THE USE OR OTHER DEALINGS IN THE
 * SOFTWARE.
 *
 *
 */

// Package content maps file extensions to HTTP content types.
package content

import "strings"

const DefaultType = "application/octet-stream"

// entry pairs a case-sensitive suffix (including the leading dot) with its MIME type.
type entry struct {
	suffix string
	mime   string
}

// table is the minimum required extension set from the spec, in no particular
// match-priority order: lookup is by exact suffix, not longest-prefix, so order
// does not matter beyond readability.
var table = []entry{
	{".ogg", "audio/ogg"},
	{".pdf", "application/pdf"},
	{".wasm", "application/wasm"},
	{".xml", "application/xml"},
	{".zip", "application/zip"},
	{".mp3", "audio/mpeg"},
	{".gif", "image/gif"},
	{".jpg", "image/jpeg"},
	{".png", "image/png"},
	{".svg", "image/svg+xml"},
	{".css", "text/css"},
	{".html", "text/html"},
	{".js", "application/javascript"},
	{".txt", "text/plain"},
	{".asc", "text/plain"},
	{".mpeg", "video/mpeg"},
	{".avi", "video/x-msvideo"},
	{".mp4", "video/mp4"},
}

var byExt map[string]string

func init() {
	byExt = make(map[string]string, len(table))
	for _, e := range table {
		byExt[e.suffix] = e.mime
	}
}

// TypeFor returns the content type for a request path, matched by the
// extension beginning at the final dot. Unknown and extensionless paths
// map to DefaultType.
func TypeFor(path string) string {
	i := strings.LastIndexByte(path, '.')
	if i < 0 {
		return DefaultType
	}

	if m, ok := byExt[path[i:]]; ok {
		return m
	}

	return DefaultType
}
