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

package privilege

import (
	"os"

	"golang.org/x/sys/unix"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/sabouaram/httpd/config"
	"github.com/sabouaram/httpd/logger"
)

var _ = Describe("[TC-PR] bindSocket", func() {
	It("[TC-PR-001] binds a dotted-quad loopback address on an ephemeral port", func() {
		fd, err := bindSocket("127.0.0.1", 0)
		Expect(err).To(BeNil())
		defer unix.Close(fd)

		Expect(listenSocket(fd, 16)).To(BeNil())
	})

	It("[TC-PR-002] rejects a non-IPv4 address", func() {
		_, err := bindSocket("not-an-address", 8080)
		Expect(err).ToNot(BeNil())
		Expect(err.IsCode(ErrorSocketBind)).To(BeTrue())
	})

	It("[TC-PR-003] rejects an IPv6 address", func() {
		_, err := bindSocket("::1", 8080)
		Expect(err).ToNot(BeNil())
		Expect(err.IsCode(ErrorSocketBind)).To(BeTrue())
	})
})

var _ = Describe("[TC-PR] NewWorkerMultiplex", func() {
	It("[TC-PR-010] creates an epoll instance and registers the listener", func() {
		fd, berr := bindSocket("127.0.0.1", 0)
		Expect(berr).To(BeNil())
		defer unix.Close(fd)
		Expect(listenSocket(fd, 16)).To(BeNil())

		ep, err := NewWorkerMultiplex(fd)
		Expect(err).To(BeNil())
		defer ep.Close()

		Expect(ep.FD()).To(BeNumerically(">", 0))
	})
})

var _ = Describe("[TC-PR] dropPrivileges", func() {
	var log *logger.Logger

	BeforeEach(func() {
		log = logger.New("httpd-test", true)
	})

	It("[TC-PR-020] warns but succeeds when neither uid nor gid is configured", func() {
		cfg := config.Defaults()
		Expect(dropPrivileges(cfg, log)).To(BeNil())
	})

	It("[TC-PR-021] drops to the process's own current ids as a no-op", func() {
		if os.Geteuid() != 0 {
			Skip("setresuid/setresgid to arbitrary ids requires root")
		}

		uid := os.Getuid()
		gid := os.Getgid()
		cfg := config.Defaults()
		cfg.UID = &uid
		cfg.GID = &gid

		Expect(dropPrivileges(cfg, log)).To(BeNil())
	})
})

var _ = Describe("[TC-PR] doChroot", func() {
	It("[TC-PR-030] confines the process to a temp directory", func() {
		if os.Geteuid() != 0 {
			Skip("chroot requires CAP_SYS_CHROOT")
		}

		dir := GinkgoT().TempDir()
		Expect(doChroot(dir)).To(BeNil())
	})
})
