package filefetcher

import (
	"context"
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/cavaliergopher/grab/v3"
	"github.com/go-kit/log"
	"github.com/go-kit/log/level"
	"github.com/pkg/errors"
)

const (
	DefaultBufferSize = 8192
)

type Config struct {
	BufferSize int `yaml:"buffer_size"`
}

func (c *Config) RegisterFlags(f *flag.FlagSet) {
	f.IntVar(&c.BufferSize, "file-fetcher.buffer-size", DefaultBufferSize, "Size of the copy buffer used when streaming response bodies to disk, in bytes.")
}

type FileFetcher struct {
	grabClient *grab.Client
	cfg        Config
	log        log.Logger
}

func NewClient(cfg Config, log log.Logger) *FileFetcher {
	if cfg.BufferSize <= 0 {
		cfg.BufferSize = DefaultBufferSize
	}

	c := grab.NewClient()
	c.BufferSize = cfg.BufferSize

	return &FileFetcher{
		grabClient: c,
		cfg:        cfg,
		log:        log,
	}
}

func (f *FileFetcher) Download(ctx context.Context, url, dest string) (int64, error) {
	level.Info(f.log).Log("msg", fmt.Sprintf("start downloading file: %s", url))

	//Drop any existing copy, dest is always rewritten in full
	if err := os.Remove(dest); err != nil && !errors.Is(err, os.ErrNotExist) {
		return 0, errors.Wrap(err, "file fetcher remove stale file")
	}

	req, err := grab.NewRequest(dest, url)
	if err != nil {
		return 0, errors.Wrap(err, "file fetcher create request")
	}

	req = req.WithContext(ctx)
	//Skip resume probing, a single GET per file
	req.NoResume = true

	resp := f.grabClient.Do(req)

	t := time.NewTicker(1 * time.Second)
	defer t.Stop()

Loop:
	for {
		select {
		case <-t.C:
			level.Debug(f.log).Log("msg", fmt.Sprintf("transferred %d / %d bytes (%.2f%%)",
				resp.BytesComplete(),
				resp.Size(),
				100*resp.Progress()))
		case <-resp.Done:
			break Loop
		}
	}

	if err := resp.Err(); err != nil {
		return 0, errors.Wrap(err, "file fetcher download")
	}

	level.Info(f.log).Log("msg", fmt.Sprintf("saved to: %s", dest))

	return resp.BytesComplete(), nil
}
