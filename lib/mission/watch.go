// Copyright 2026 The Orbitdeck Missions Authors
// SPDX-License-Identifier: Apache-2.0

package mission

import (
	"encoding/binary"
	"log/slog"
	"path/filepath"
	"time"

	"golang.org/x/sys/unix"
)

// watchDebounce is how long the watcher waits after the first change
// event before re-reading, so a burst of writes produces one reload.
const watchDebounce = 50 * time.Millisecond

// Watch starts an inotify watcher that reloads the dataset at path
// whenever it is rewritten and calls onChange with the new dataset.
// current is the dataset already loaded from path; reloads whose
// digest matches the most recently delivered dataset are skipped.
//
// The watcher monitors the parent directory for IN_CLOSE_WRITE and
// IN_MOVED_TO events on the target filename, which covers both
// in-place writes and atomic rename-over. Reload failures (file
// mid-write, briefly absent, temporarily invalid) are logged and
// skipped; the previous dataset stays in effect.
//
// onChange runs on the watcher goroutine. The returned stop function
// ends the watcher and is safe to call more than once.
func Watch(path string, current *Dataset, logger *slog.Logger, onChange func(*Dataset)) (func(), error) {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}

	absolutePath, err := filepath.Abs(path)
	if err != nil {
		return nil, err
	}

	// Watch the directory rather than the file: tools that write a
	// temp file and rename it replace the inode, and a file-level
	// watch would stay attached to the old one.
	directory := filepath.Dir(absolutePath)
	filename := filepath.Base(absolutePath)

	fd, err := unix.InotifyInit1(unix.IN_NONBLOCK | unix.IN_CLOEXEC)
	if err != nil {
		return nil, err
	}

	if _, err := unix.InotifyAddWatch(fd, directory, unix.IN_CLOSE_WRITE|unix.IN_MOVED_TO); err != nil {
		unix.Close(fd)
		return nil, err
	}

	previousDigest := ""
	if current != nil {
		previousDigest = current.Digest
	}

	stopChannel := make(chan struct{})
	go watchLoop(fd, absolutePath, filename, previousDigest, logger, onChange, stopChannel)

	stopped := false
	stop := func() {
		if stopped {
			return
		}
		stopped = true
		close(stopChannel)
	}
	return stop, nil
}

// watchLoop polls the inotify fd with a 100ms timeout so the stop
// channel is checked promptly.
func watchLoop(
	fd int,
	path string,
	filename string,
	previousDigest string,
	logger *slog.Logger,
	onChange func(*Dataset),
	stopChannel <-chan struct{},
) {
	defer unix.Close(fd)

	buffer := make([]byte, 4096)

	for {
		select {
		case <-stopChannel:
			return
		default:
		}

		pollDescriptors := []unix.PollFd{{Fd: int32(fd), Events: unix.POLLIN}}
		count, err := unix.Poll(pollDescriptors, 100)
		if err != nil {
			if err == unix.EINTR {
				continue
			}
			logger.Warn("dataset watcher stopped", "path", path, "error", err)
			return
		}
		if count == 0 {
			continue
		}

		bytesRead, err := unix.Read(fd, buffer)
		if err != nil {
			if err == unix.EAGAIN || err == unix.EINTR {
				continue
			}
			logger.Warn("dataset watcher stopped", "path", path, "error", err)
			return
		}

		if !inotifyMatchesFile(buffer[:bytesRead], filename) {
			continue
		}

		time.Sleep(watchDebounce)
		drainInotifyEvents(fd, buffer)

		dataset, err := Load(path)
		if err != nil {
			logger.Warn("dataset reload failed, keeping previous dataset", "path", path, "error", err)
			continue
		}
		if dataset.Digest == previousDigest {
			logger.Debug("dataset rewritten without changes", "path", path)
			continue
		}

		previousDigest = dataset.Digest
		logger.Info("dataset reloaded", "path", path, "missions", dataset.Len(), "digest", dataset.Digest[:12])
		onChange(dataset)
	}
}

// inotifyMatchesFile checks whether any event in the buffer names the
// target file. Layout from inotify(7):
//
//	struct inotify_event {
//	    int32_t  wd;     // offset 0
//	    uint32_t mask;   // offset 4
//	    uint32_t cookie; // offset 8
//	    uint32_t len;    // offset 12
//	    char     name[]; // offset 16, null-padded to alignment
//	};
func inotifyMatchesFile(buffer []byte, targetFilename string) bool {
	offset := 0
	for offset+unix.SizeofInotifyEvent <= len(buffer) {
		nameLength := int(binary.NativeEndian.Uint32(buffer[offset+12 : offset+16]))
		eventSize := unix.SizeofInotifyEvent + nameLength
		if offset+eventSize > len(buffer) {
			break
		}

		if nameLength > 0 {
			nameBytes := buffer[offset+unix.SizeofInotifyEvent : offset+eventSize]
			if nullTerminatedString(nameBytes) == targetFilename {
				return true
			}
		}

		offset += eventSize
	}
	return false
}

func nullTerminatedString(data []byte) string {
	for i, b := range data {
		if b == 0 {
			return string(data[:i])
		}
	}
	return string(data)
}

// drainInotifyEvents discards queued events so a burst of writes
// coalesces into one reload.
func drainInotifyEvents(fd int, buffer []byte) {
	for {
		if _, err := unix.Read(fd, buffer); err != nil {
			return
		}
	}
}
