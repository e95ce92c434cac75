// Package follow prints a trace file and keeps printing what is appended
// to it, the way tail -f does.
package follow

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"tracelog/session"

	"github.com/fsnotify/fsnotify"
)

// Options configures a Follower.
type Options struct {
	// Styler highlights framing lines when set.
	Styler *Styler
	// PollInterval re-reads the file even without filesystem events.
	// Zero disables polling.
	PollInterval time.Duration
}

// Follower copies new data from a file to a writer.
type Follower struct {
	path    string
	out     io.Writer
	opts    Options
	offset  int64
	pending []byte
}

// New returns a Follower for path that writes to out.
func New(path string, out io.Writer, opts Options) *Follower {
	return &Follower{path: path, out: out, opts: opts}
}

// ReadNew copies everything written since the previous call and returns
// the number of bytes read. A file that shrank is read again from the
// start. With a Styler, an unterminated last line is held back until its
// line break arrives.
func (f *Follower) ReadNew() (int, error) {
	file, err := os.Open(f.path)
	if err != nil {
		return 0, fmt.Errorf("failed to open %s: %w", f.path, err)
	}
	defer file.Close()

	info, err := file.Stat()
	if err != nil {
		return 0, fmt.Errorf("failed to stat %s: %w", f.path, err)
	}
	if info.Size() < f.offset {
		session.Debugf("follow: %s truncated from %d to %d bytes", f.path, f.offset, info.Size())
		f.offset = 0
		f.pending = nil
	}

	// Seek to the last known offset.
	if f.offset > 0 {
		if _, err := file.Seek(f.offset, io.SeekStart); err != nil {
			return 0, fmt.Errorf("seek error for %s: %w", f.path, err)
		}
	}

	data, err := io.ReadAll(file)
	if err != nil {
		return 0, fmt.Errorf("read error for %s: %w", f.path, err)
	}
	if len(data) == 0 {
		return 0, nil
	}
	f.offset += int64(len(data))

	if err := f.emit(data); err != nil {
		return len(data), err
	}
	return len(data), nil
}

// Flush writes a held-back partial line, if any.
func (f *Follower) Flush() error {
	if len(f.pending) == 0 {
		return nil
	}
	line := string(f.pending)
	f.pending = nil
	_, err := io.WriteString(f.out, f.opts.Styler.Render(line))
	return err
}

func (f *Follower) emit(data []byte) error {
	if f.opts.Styler == nil {
		_, err := f.out.Write(data)
		return err
	}

	data = append(f.pending, data...)
	f.pending = nil
	for {
		i := bytes.IndexByte(data, '\n')
		if i < 0 {
			break
		}
		if _, err := io.WriteString(f.out, f.opts.Styler.Render(string(data[:i]))+"\n"); err != nil {
			return err
		}
		data = data[i+1:]
	}
	if len(data) > 0 {
		f.pending = append([]byte(nil), data...)
	}
	return nil
}

// Run copies the current contents and then every append until ctx is done.
// The parent directory is watched so a trace file recreated by a new run
// is picked up from its start.
func (f *Follower) Run(ctx context.Context) error {
	if _, err := f.ReadNew(); err != nil {
		return err
	}

	w, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("failed to create file watcher: %w", err)
	}
	defer w.Close()

	dir := filepath.Dir(f.path)
	if err := w.Add(dir); err != nil {
		return fmt.Errorf("failed to watch %s: %w", dir, err)
	}
	session.Debugf("follow: watching %s for %s", dir, filepath.Base(f.path))

	var tick <-chan time.Time
	if f.opts.PollInterval > 0 {
		ticker := time.NewTicker(f.opts.PollInterval)
		defer ticker.Stop()
		tick = ticker.C
	}

	target := filepath.Clean(f.path)
	for {
		select {
		case <-ctx.Done():
			return f.Flush()
		case ev, ok := <-w.Events:
			if !ok {
				return f.Flush()
			}
			if filepath.Clean(ev.Name) != target {
				continue
			}
			if ev.Has(fsnotify.Create) {
				f.offset = 0
				f.pending = nil
			}
			if ev.Has(fsnotify.Write) || ev.Has(fsnotify.Create) {
				if err := f.readLogged(); err != nil {
					return err
				}
			}
		case err, ok := <-w.Errors:
			if !ok {
				return f.Flush()
			}
			session.Debugf("follow: watcher error: %v", err)
		case <-tick:
			if err := f.readLogged(); err != nil {
				return err
			}
		}
	}
}

// readLogged reads new data, tolerating the file being briefly absent
// between a remove and a re-create.
func (f *Follower) readLogged() error {
	_, err := f.ReadNew()
	if errors.Is(err, os.ErrNotExist) {
		session.Debugf("follow: %s is gone, waiting", f.path)
		return nil
	}
	return err
}
