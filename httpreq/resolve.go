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

package httpreq

import (
	"os"
	"path"
)

// Resolution is the outcome of mapping a request target onto the
// (already chrooted) filesystem. Status is always set; Path and Size
// accompany Status==200, Location accompanies Status==301.
type Resolution struct {
	Path     string // resolved, servable regular file
	Status   int    // 200/301/403/404/500 outcomes
	Location string // set alongside Status==301
	Size     int64
}

// Resolve maps target (a request-target straight off the wire) onto a
// servable path under the process's current root, which is "/" after
// chroot. The working directory is always the effective root, so a
// target is joined against "." rather than an absolute chroot path.
func Resolve(target string) Resolution {
	if target == "" {
		return Resolution{Status: 500}
	}

	if target[len(target)-1] == '/' {
		return Resolution{Status: 301, Location: target + "index.html"}
	}

	clean := path.Clean(target)
	fsPath := "." + clean

	info, err := os.Stat(fsPath)
	if os.IsNotExist(err) {
		return Resolution{Status: 404}
	}
	if err != nil {
		return Resolution{Status: 500}
	}

	if info.IsDir() {
		return Resolution{Status: 301, Location: clean + "/"}
	}

	if !info.Mode().IsRegular() {
		return Resolution{Status: 403}
	}

	return Resolution{Path: fsPath, Status: 200, Size: info.Size()}
}
