package cmd

import (
	"fmt"
	"os"
	"path"
	"path/filepath"

	"netcollector/core/config"
	"netcollector/core/logger"
	"netcollector/core/storage"

	"github.com/minio/minio-go/v7"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// templatesCmd groups template maintenance commands.
var templatesCmd = &cobra.Command{
	Use:   "templates",
	Short: "Manage templates in the storage bucket",
}

// pushCmd uploads the local template directory and index to the bucket.
var pushCmd = &cobra.Command{
	Use:   "push",
	Short: "Upload local templates and the rule index to the storage bucket",
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()

		cfg, err := config.LoadConfig(".")
		if err != nil {
			return err
		}
		logg, err := logger.New(&cfg.Log)
		if err != nil {
			return err
		}
		defer logg.Sync()

		client, err := storage.NewClient(cfg.Storage)
		if err != nil {
			return err
		}
		if err := storage.EnsureBucket(ctx, client, cfg.Storage.Bucket, cfg.Storage.Region); err != nil {
			return err
		}

		cc := cfg.Collector
		entries, err := os.ReadDir(cc.TemplatesDir)
		if err != nil {
			return fmt.Errorf("failed to read templates: %w", err)
		}

		upload := func(local, key string) error {
			f, err := os.Open(local)
			if err != nil {
				return err
			}
			defer f.Close()

			info, err := f.Stat()
			if err != nil {
				return err
			}
			_, err = client.PutObject(ctx, cfg.Storage.Bucket, key, f, info.Size(),
				minio.PutObjectOptions{ContentType: "text/plain"})
			if err != nil {
				return fmt.Errorf("failed to upload %s: %w", local, err)
			}
			logg.Info("Uploaded", zap.String("key", key))
			return nil
		}

		// The runtime reads the index from the key named by its configured path.
		indexKey := filepath.ToSlash(filepath.Clean(cc.IndexFile))
		indexPushed := false

		count := 0
		for _, e := range entries {
			if e.IsDir() {
				continue
			}
			key := path.Join(cc.TemplatePrefix, e.Name())
			if err := upload(filepath.Join(cc.TemplatesDir, e.Name()), key); err != nil {
				return err
			}
			indexPushed = indexPushed || key == indexKey
			count++
		}
		if !indexPushed {
			if err := upload(cc.IndexFile, indexKey); err != nil {
				return err
			}
		}

		names, err := storage.ListNames(ctx, client, cfg.Storage.Bucket, cc.TemplatePrefix)
		if err != nil {
			return err
		}
		logg.Info("Templates pushed", zap.Int("uploaded", count), zap.Int("in_bucket", len(names)))
		return nil
	},
}

func init() {
	templatesCmd.AddCommand(pushCmd)
	RootCmd.AddCommand(templatesCmd)
}
