package dataset

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/sirupsen/logrus"

	"yieldboard/server/config"
	"yieldboard/server/internal/models"
)

// Provider downloads the two source datasets from the artifact store and
// keeps the parsed records in memory for the lifetime of the process. Each
// dataset is fetched at most once per run; there is no on-disk freshness
// check, a restart re-downloads.
type Provider struct {
	cfg    *config.Config
	logger *logrus.Logger
	client *http.Client

	salesOnce sync.Once
	sales     []models.SaleRecord
	salesErr  error

	rentalsOnce sync.Once
	rentals     []models.RentalRecord
	rentalsErr  error
}

func NewProvider(cfg *config.Config, logger *logrus.Logger) *Provider {
	// Create the cache directory if it doesn't exist
	os.MkdirAll(cfg.DataDir, 0755)

	return &Provider{
		cfg:    cfg,
		logger: logger,
		client: &http.Client{Timeout: time.Duration(cfg.Hub.TimeoutSeconds) * time.Second},
	}
}

// Sales returns the sales snapshot, downloading and parsing it on the
// first call. The snapshot is immutable; callers must not modify it.
func (p *Provider) Sales(ctx context.Context) ([]models.SaleRecord, error) {
	p.salesOnce.Do(func() {
		path, err := p.download(ctx, p.cfg.Hub.SalesRepo, SalesFilename)
		if err != nil {
			p.salesErr = err
			return
		}
		p.sales, p.salesErr = LoadSales(path)
		if p.salesErr == nil {
			p.logger.WithFields(logrus.Fields{
				"file":    path,
				"records": len(p.sales),
			}).Info("Loaded sales dataset")
		}
	})
	return p.sales, p.salesErr
}

// Rentals returns the rentals snapshot, downloading and parsing it on the
// first call.
func (p *Provider) Rentals(ctx context.Context) ([]models.RentalRecord, error) {
	p.rentalsOnce.Do(func() {
		path, err := p.download(ctx, p.cfg.Hub.RentalsRepo, RentalsFilename)
		if err != nil {
			p.rentalsErr = err
			return
		}
		p.rentals, p.rentalsErr = LoadRentals(path)
		if p.rentalsErr == nil {
			p.logger.WithFields(logrus.Fields{
				"file":    path,
				"records": len(p.rentals),
			}).Info("Loaded rentals dataset")
		}
	})
	return p.rentals, p.rentalsErr
}

func (p *Provider) download(ctx context.Context, repo, filename string) (string, error) {
	target := filepath.Join(p.cfg.DataDir, filename)
	datasetURL := fmt.Sprintf("%s/datasets/%s/resolve/main/%s", p.cfg.Hub.BaseURL, repo, filename)

	p.logger.WithFields(logrus.Fields{
		"repo": repo,
		"file": filename,
	}).Info("Downloading dataset")

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, datasetURL, nil)
	if err != nil {
		return "", fmt.Errorf("failed to create request: %w", err)
	}
	if p.cfg.Hub.Token != "" {
		req.Header.Set("Authorization", "Bearer "+p.cfg.Hub.Token)
	}

	resp, err := p.client.Do(req)
	if err != nil {
		p.logger.WithError(err).WithField("repo", repo).Error("Dataset download failed")
		return "", fmt.Errorf("dataset download failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("dataset download failed: %s returned %s", repo, resp.Status)
	}

	out, err := os.Create(target)
	if err != nil {
		return "", fmt.Errorf("failed to create %s: %w", target, err)
	}
	defer out.Close()

	if _, err := io.Copy(out, resp.Body); err != nil {
		return "", fmt.Errorf("failed to write %s: %w", target, err)
	}

	return target, nil
}
