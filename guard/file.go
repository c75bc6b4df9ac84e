package guard

import (
	"fmt"
	"os"

	"go.uber.org/zap"
)

// Option configures a file guard.
type Option func(*options)

type options struct {
	logger *zap.Logger
}

// WithLogger logs acquisition and release of the guarded file.
func WithLogger(logger *zap.Logger) Option {
	return func(o *options) {
		o.logger = logger
	}
}

func newOptions(opts []Option) options {
	o := options{logger: zap.NewNop()}
	for _, opt := range opts {
		opt(&o)
	}
	return o
}

// ManagedFile is a file that is opened for writing on Enter and closed on
// Exit. Pair the calls with defer:
//
//	f, err := mf.Enter()
//	if err != nil {
//		return err
//	}
//	defer mf.Exit()
type ManagedFile struct {
	name     string
	file     *os.File
	released bool
	logger   *zap.Logger
}

// NewManagedFile returns a guard for the named file. Nothing is opened until
// Enter is called.
func NewManagedFile(name string, opts ...Option) *ManagedFile {
	o := newOptions(opts)
	return &ManagedFile{name: name, logger: o.logger}
}

// Enter creates or truncates the file and returns it for writing.
func (m *ManagedFile) Enter() (*os.File, error) {
	f, err := create(m.name, m.logger)
	if err != nil {
		return nil, err
	}
	m.file = f
	m.released = false
	return f, nil
}

// Exit closes the file opened by Enter. It does nothing if Enter failed or
// the file was already released.
func (m *ManagedFile) Exit() error {
	if m.file == nil || m.released {
		return nil
	}
	m.released = true
	return release(m.file, m.logger)
}

// WithFile creates or truncates the named file, passes it to fn and closes
// it once fn is done, even if fn fails or panics.
func WithFile(name string, fn func(*os.File) error, opts ...Option) error {
	o := newOptions(opts)
	return Use(func() (*loggedFile, error) {
		f, err := create(name, o.logger)
		if err != nil {
			return nil, err
		}
		return &loggedFile{File: f, logger: o.logger}, nil
	}, func(f *loggedFile) error {
		return fn(f.File)
	})
}

// loggedFile closes through release so both guard forms log the same way.
type loggedFile struct {
	*os.File
	logger *zap.Logger
}

func (f *loggedFile) Close() error {
	return release(f.File, f.logger)
}

func create(name string, logger *zap.Logger) (*os.File, error) {
	f, err := os.Create(name)
	if err != nil {
		return nil, fmt.Errorf("acquire file: %w", err)
	}
	logger.Debug("acquired file", zap.String("file", name))
	return f, nil
}

func release(f *os.File, logger *zap.Logger) error {
	if err := f.Close(); err != nil {
		logger.Warn("failed to close file", zap.String("file", f.Name()), zap.Error(err))
		return fmt.Errorf("release file: %w", err)
	}
	logger.Debug("released file", zap.String("file", f.Name()))
	return nil
}
