package filetag

import (
	"io"
	"time"

	"github.com/sirupsen/logrus"
)

// Workspace is a directory the user pinned, with a display name
type Workspace struct {
	Name    string    `json:"name"`
	Dir     string    `json:"dir"`
	AddedAt time.Time `json:"added_at"`
}

// StoreOptions configures store behavior
type StoreOptions struct {
	Now func() time.Time
	Log logrus.FieldLogger
}

// DefaultStoreOptions returns sensible defaults
func DefaultStoreOptions() StoreOptions {
	return StoreOptions{
		Now: time.Now,
		Log: NopLogger(),
	}
}

func (o StoreOptions) withDefaults() StoreOptions {
	if o.Now == nil {
		o.Now = time.Now
	}
	if o.Log == nil {
		o.Log = NopLogger()
	}
	return o
}

// NopLogger returns a logger that drops everything
func NopLogger() logrus.FieldLogger {
	l := logrus.New()
	l.SetOutput(io.Discard)
	return l
}
