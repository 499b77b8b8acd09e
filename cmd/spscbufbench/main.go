// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

// Command spscbufbench drives one producer and one consumer over a
// spscbuf.Queue and reports throughput. It exists to exercise the package
// against something closer to real traffic than a unit test, and to give
// the memprovider implementations a caller outside of tests.
package main

import (
	"flag"
	"fmt"
	"log/slog"
	"os"
	"time"

	"code.hybscloud.com/iox"
	"code.hybscloud.com/spin"
	"code.hybscloud.com/spscbuf"
	"code.hybscloud.com/spscbuf/memprovider"
)

func main() {
	var (
		configPath = flag.String("config", "", "path to a TOML config file (optional)")
		bufferSize = flag.Uint64("buffer", 1<<20, "ring buffer size in bytes")
		msgSize    = flag.Int("msgsize", 128, "payload size in bytes")
		messages   = flag.Int("messages", 1_000_000, "number of messages to send")
		provider   = flag.String("provider", "heap", "memory provider: heap or shared")
		sharedName = flag.String("shared-name", "spscbufbench", "segment name when -provider=shared")
	)
	flag.Parse()

	cfg := Config{}
	if *configPath != "" {
		var err error
		cfg, err = loadConfig(*configPath)
		if err != nil {
			slog.Error("load config", "path", *configPath, "err", err)
			os.Exit(1)
		}
		if cfg.Buffer.SizeBytes != 0 {
			*bufferSize = cfg.Buffer.SizeBytes
		}
		if cfg.Message.SizeBytes != 0 {
			*msgSize = cfg.Message.SizeBytes
		}
		if cfg.Run.Messages != 0 {
			*messages = cfg.Run.Messages
		}
		if cfg.Run.Provider != "" {
			*provider = cfg.Run.Provider
		}
		if cfg.Run.SharedName != "" {
			*sharedName = cfg.Run.SharedName
		}
	}

	if err := run(*bufferSize, *msgSize, *messages, *provider, *sharedName); err != nil {
		slog.Error("run", "err", err)
		os.Exit(1)
	}
}

func run(bufferSize uint64, msgSize, messages int, providerName, sharedName string) error {
	var p spscbuf.Provider
	switch providerName {
	case "heap":
		p = memprovider.Heap{}
	case "shared":
		p = memprovider.POSIXShared{Name: sharedName, Create: true}
	default:
		return fmt.Errorf("unknown provider %q", providerName)
	}

	q, storage, err := spscbuf.New(bufferSize).WithProvider(p).Build()
	if err != nil {
		return fmt.Errorf("build queue: %w", err)
	}
	defer storage.Close()

	slog.Info("spscbufbench starting",
		"buffer_bytes", q.BufferSize(),
		"max_payload", q.MaxPayloadSize(),
		"message_size", msgSize,
		"messages", messages,
		"provider", providerName,
	)

	payload := make([]byte, msgSize)
	for i := range payload {
		payload[i] = byte(i)
	}

	done := make(chan error, 1)
	start := time.Now()

	go func() {
		if err := q.BindProducer(); err != nil {
			done <- err
			return
		}
		for i := 0; i < messages; i++ {
			sw := spin.Wait{}
			for {
				ok, err := q.Enqueue(payload)
				if err != nil {
					done <- err
					return
				}
				if ok {
					break
				}
				sw.Once()
			}
		}
		done <- nil
	}()

	if err := q.BindConsumer(); err != nil {
		return err
	}
	var backoff iox.Backoff
	received := 0
	for received < messages {
		view := q.DequeueBegin()
		if view.Empty() {
			backoff.Wait()
			continue
		}
		backoff.Reset()
		received++
		q.DequeueCommit(view)
	}

	if err := <-done; err != nil {
		return err
	}

	elapsed := time.Since(start)
	throughput := float64(messages) / elapsed.Seconds()
	fmt.Printf("sent %d messages of %d bytes in %s (%.0f msg/s)\n", messages, msgSize, elapsed, throughput)
	return nil
}
