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

// Command httpd is the supervisor/worker entry point. Every invocation
// runs this same binary: the presence of supervisor.WorkerSlotEnv in the
// environment is what tells a re-exec'd process to become a worker
// instead of running the full descent pipeline again.
package main

import (
	"fmt"
	"os"
	"strconv"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/sabouaram/httpd/config"
	"github.com/sabouaram/httpd/logger"
	"github.com/sabouaram/httpd/metrics"
	"github.com/sabouaram/httpd/privilege"
	"github.com/sabouaram/httpd/supervisor"
	"github.com/sabouaram/httpd/worker"
)

func main() {
	if slot, ok := os.LookupEnv(supervisor.WorkerSlotEnv); ok {
		os.Exit(runWorker(slot))
	}

	os.Exit(runSupervisor())
}

// runWorker is the path a re-exec'd child takes: no flags, no config
// file, no privilege descent — just the inherited listener and a fresh
// epoll instance, per spec §4.2's "worker entry point, never returns
// into supervisor code".
func runWorker(slot string) int {
	n, err := strconv.Atoi(slot)
	if err != nil {
		return 1
	}

	log := logger.New("httpd-worker", false)
	listener := os.NewFile(uintptr(supervisor.WorkerListenerFD), "httpd-listener")
	listenerFD := int(listener.Fd())

	ep, lerr := privilege.NewWorkerMultiplex(listenerFD)
	if lerr != nil {
		log.Fatalf("worker %d: %v", n, lerr)
		return 1
	}

	w := worker.New(n, listenerFD, ep, log, metrics.New())
	if err = w.Run(); err != nil {
		log.Errorf("worker %d event loop exited: %v", n, err)
		return 1
	}

	return 0
}

func runSupervisor() int {
	v := viper.New()
	fs := rootCmd.Flags()

	config.BindFlags(fs, v)

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		return 1
	}

	if cfgFile := v.GetString("config"); cfgFile != "" {
		if lerr := config.LoadFile(v, cfgFile); lerr != nil {
			fmt.Fprintln(os.Stderr, lerr.Error())
			return 1
		}
	}

	cfg, lerr := config.FromViper(v)
	if lerr != nil {
		fmt.Fprintln(os.Stderr, lerr.Error())
		return 1
	}

	if lerr = cfg.Validate(); lerr != nil {
		fmt.Fprintln(os.Stderr, lerr.Error())
		return 1
	}

	log := logger.New("httpd", cfg.Foreground)

	if !cfg.Foreground {
		if derr := privilege.Daemonize(); derr != nil {
			log.Errorf("daemonize failed: %v", derr)
			return 1
		}
	}

	res, perr := privilege.Run(cfg, log)
	if perr != nil {
		log.Errorf("privilege descent failed: %v", perr)
		return 1
	}

	reg := metrics.New()
	reg.WorkersLive.Set(0)

	sup := supervisor.New(cfg, log, reg, res.Listener)

	if err := sup.Run(); err != nil {
		log.Errorf("supervisor exited: %v", err)
		return 1
	}

	return 0
}

var rootCmd = &cobra.Command{
	Use:          "httpd",
	Short:        "A minimal, privilege-dropping, prefork static file server",
	Args:         cobra.NoArgs,
	SilenceUsage: false,
	RunE: func(cmd *cobra.Command, args []string) error {
		return nil
	},
}
