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

package supervisor

import (
	"os"
	"os/exec"
	"strconv"
)

// WorkerSlotEnv is read by cmd/httpd's main to decide whether this
// process invocation is a worker rather than the supervisor. Its value
// is the slot index; the inherited listener always arrives as fd 3
// (the first of exec.Cmd's ExtraFiles).
const WorkerSlotEnv = "HTTPD_WORKER_SLOT"

// WorkerListenerFD is the fixed fd number os/exec places the first
// ExtraFiles entry at in the child.
const WorkerListenerFD = 3

// spawn re-execs the current binary as worker slot, inheriting the
// listener via ExtraFiles — the Go-idiomatic substitute for fork()
// sharing a descriptor table, since the runtime cannot safely fork
// without exec once goroutines exist. This is the pipeline's last step
// (spec §4.2: "spawn must follow all privilege reductions"); by the
// time spawn runs, bind/chroot/drop/listen have all already happened
// once in this same process.
//
// A goroutine owns the blocking Wait for this child and reports its
// exit on s.exited, so Run's select loop never blocks on process
// reaping directly.
func (s *Supervisor) spawn(slot int) error {
	cmd := exec.Command(os.Args[0])
	cmd.Env = append(os.Environ(), WorkerSlotEnv+"="+strconv.Itoa(slot))
	cmd.ExtraFiles = []*os.File{s.listener}
	cmd.Stdin = nil
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr

	if err := cmd.Start(); err != nil {
		return err
	}

	s.mu.Lock()
	s.workers[slot] = record{slot: slot, pid: cmd.Process.Pid, cmd: cmd}
	s.mu.Unlock()

	s.reg.WorkersLive.Set(float64(s.liveCount()))

	go func() {
		err := cmd.Wait()
		s.exited <- exitEvent{slot: slot, err: err}
	}()

	return nil
}
