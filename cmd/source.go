package cmd

import (
	"context"
	"fmt"
	"os"
	"time"

	"mirrorcheck/core/config"
	"mirrorcheck/core/storage"
	"mirrorcheck/feature/verify"
)

// buildSource classifies the source specification once at startup: an
// s3://bucket/prefix URL expands to a table by listing the bucket, an
// existing regular file is parsed as a URL list, and anything else is
// treated as a template pattern.
func buildSource(ctx context.Context, spec string, cfg *config.Config) (verify.Source, error) {
	if bucket, prefix, ok := storage.SplitS3(spec); ok {
		client, err := storage.NewClient(cfg.Storage)
		if err != nil {
			return nil, err
		}
		expiry := time.Duration(cfg.Storage.PresignExpiryMinutes) * time.Minute
		return verify.NewS3Source(ctx, client, bucket, prefix, expiry)
	}

	if info, err := os.Stat(spec); err == nil && info.Mode().IsRegular() {
		f, err := os.Open(spec)
		if err != nil {
			return nil, fmt.Errorf("failed to open source list %s: %w", spec, err)
		}
		defer f.Close()
		return verify.NewTableSource(f)
	}

	return verify.TemplateSource{Pattern: spec}, nil
}
