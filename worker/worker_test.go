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

package worker_test

import (
	"io"
	"net"
	"os"
	"path/filepath"
	"strconv"
	"time"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"golang.org/x/sys/unix"

	"github.com/sabouaram/httpd/logger"
	"github.com/sabouaram/httpd/metrics"
	"github.com/sabouaram/httpd/multiplex"
	"github.com/sabouaram/httpd/worker"
)

var _ = Describe("[TC-WK] Worker event loop", func() {
	var (
		listenerFD int
		ep         *multiplex.Epoll
		root, prev string
	)

	BeforeEach(func() {
		root = GinkgoT().TempDir()
		Expect(os.WriteFile(filepath.Join(root, "index.html"), []byte("hello"), 0o644)).To(Succeed())

		var err error
		prev, err = os.Getwd()
		Expect(err).ToNot(HaveOccurred())
		Expect(os.Chdir(root)).To(Succeed())

		listenerFD, err = unix.Socket(unix.AF_INET, unix.SOCK_STREAM|unix.SOCK_NONBLOCK, unix.IPPROTO_TCP)
		Expect(err).ToNot(HaveOccurred())
		Expect(unix.Bind(listenerFD, &unix.SockaddrInet4{Addr: [4]byte{127, 0, 0, 1}})).To(Succeed())
		Expect(unix.Listen(listenerFD, 16)).To(Succeed())

		ep, err = multiplex.New()
		Expect(err).ToNot(HaveOccurred())
		Expect(ep.AddListener(listenerFD)).To(Succeed())
	})

	AfterEach(func() {
		_ = ep.Close()
		_ = unix.Close(listenerFD)
		Expect(os.Chdir(prev)).To(Succeed())
	})

	It("[TC-WK-001] serves a GET request end to end and closes on Connection: close", func() {
		sa, err := unix.Getsockname(listenerFD)
		Expect(err).ToNot(HaveOccurred())
		port := sa.(*unix.SockaddrInet4).Port

		log := logger.New("httpd-test", true)
		reg := metrics.New()
		w := worker.New(0, listenerFD, ep, log, reg)

		done := make(chan error, 1)
		go func() { done <- w.Run() }()

		conn, err := net.DialTimeout("tcp", "127.0.0.1:"+strconv.Itoa(port), 2*time.Second)
		Expect(err).ToNot(HaveOccurred())
		defer conn.Close()

		_, err = conn.Write([]byte("GET /index.html HTTP/1.1\r\nConnection: close\r\n\r\n"))
		Expect(err).ToNot(HaveOccurred())

		// ReadAll only returns without error once the server has closed
		// the connection; the deadline turns a connection left open into
		// a failure.
		_ = conn.SetReadDeadline(time.Now().Add(2 * time.Second))
		buf, err := io.ReadAll(conn)
		Expect(err).ToNot(HaveOccurred())

		out := string(buf)
		Expect(out).To(ContainSubstring("HTTP/1.1 200 OK"))
		Expect(out).To(ContainSubstring("hello"))
	})
})
