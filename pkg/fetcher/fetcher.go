package fetcher

import (
	"context"
	"flag"
	"fmt"
	"path/filepath"

	"github.com/ValerySidorin/assetmirror/pkg/filefetcher"
	"github.com/ValerySidorin/assetmirror/pkg/util/fs"
	gklog "github.com/go-kit/log"
	"github.com/go-kit/log/level"
	"github.com/grafana/dskit/services"
	"github.com/pkg/errors"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/samber/lo"
)

type Fetcher struct {
	services.Service

	cfg Config
	log gklog.Logger

	fileFetcher *filefetcher.FileFetcher
	images      []Descriptor

	downloads       *prometheus.CounterVec
	downloadedBytes prometheus.Counter
}

type Config struct {
	FileFetcher filefetcher.Config `yaml:"file_fetcher"`
}

func (c *Config) RegisterFlags(f *flag.FlagSet) {
	c.FileFetcher.RegisterFlags(f)
}

func New(cfg Config, images []Descriptor, reg prometheus.Registerer, log gklog.Logger) (*Fetcher, error) {
	log = gklog.With(log, "service", "fetcher")

	for _, img := range images {
		if img.URL == "" || img.LocalPath == "" {
			return nil, errors.Errorf("invalid image descriptor: %+v", img)
		}
	}

	reg = prometheus.WrapRegistererWithPrefix("assetmirror_", reg)

	f := &Fetcher{
		cfg:         cfg,
		log:         log,
		fileFetcher: filefetcher.NewClient(cfg.FileFetcher, log),
		images:      images,
		downloads: promauto.With(reg).NewCounterVec(prometheus.CounterOpts{
			Name: "fetcher_downloads_total",
			Help: "Total number of attempted image downloads, partitioned by result.",
		}, []string{"result"}),
		downloadedBytes: promauto.With(reg).NewCounter(prometheus.CounterOpts{
			Name: "fetcher_downloaded_bytes_total",
			Help: "Total number of body bytes written to local files.",
		}),
	}

	f.Service = services.NewBasicService(f.start, f.run, nil)

	return f, nil
}

func (f *Fetcher) start(ctx context.Context) error {
	dirs := lo.Uniq(lo.Map(f.images, func(img Descriptor, _ int) string {
		return filepath.Dir(img.LocalPath)
	}))

	for _, dir := range dirs {
		if err := fs.EnsureDir(dir); err != nil {
			return errors.Wrap(err, "fetcher ensure image dir")
		}
	}

	return nil
}

func (f *Fetcher) run(ctx context.Context) error {
	level.Info(f.log).Log("msg", fmt.Sprintf("starting download of %d fallback images", len(f.images)))

	failed := make([]Descriptor, 0, len(f.images))

	//Failed downloads do not interrupt the pass, they are reported after it
	for _, img := range f.images {
		level.Info(f.log).Log("msg", img.Description)

		written, err := f.fileFetcher.Download(ctx, img.URL, img.LocalPath)
		if err != nil {
			level.Error(f.log).Log("msg", fmt.Sprintf("failed to download %s", img.URL), "err", err)
			f.downloads.WithLabelValues("failure").Inc()
			failed = append(failed, img)
			continue
		}

		f.downloads.WithLabelValues("success").Inc()
		f.downloadedBytes.Add(float64(written))
	}

	succeeded := len(f.images) - len(failed)
	level.Info(f.log).Log("msg", fmt.Sprintf("download complete: %d/%d images downloaded successfully", succeeded, len(f.images)))

	if len(failed) > 0 {
		return errors.Errorf("%d of %d fallback images failed to download", len(failed), len(f.images))
	}

	level.Info(f.log).Log("msg", "all images downloaded successfully")
	level.Info(f.log).Log("msg", "update config files to use the local image paths and test that the app still loads them")

	return nil
}
