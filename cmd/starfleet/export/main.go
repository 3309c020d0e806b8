package main

// go run cmd/starfleet/export/main.go

import (
	"context"
	"time"

	"starfleet/internal/app/config"
	"starfleet/internal/app/pkg"
	"starfleet/internal/app/snapshot"

	"github.com/sirupsen/logrus"
)

func main() {
	conf, err := config.NewConfig()
	if err != nil {
		logrus.Fatalf("error loading config: %v", err)
	}
	if conf.MinioEndpoint == "" {
		logrus.Fatal("MinioEndpoint is not configured")
	}

	store, _, err := pkg.OpenStore(conf)
	if err != nil {
		logrus.Fatalf("error initializing repository: %v", err)
	}

	client, err := snapshot.NewMinioClient(conf.MinioEndpoint, conf.MinioAccessKey, conf.MinioSecretKey, conf.MinioUseSSL)
	if err != nil {
		logrus.Fatalf("error initializing minio client: %v", err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), time.Minute)
	defer cancel()

	object, err := snapshot.NewExporter(client, conf.MinioBucket, store).Export(ctx)
	if err != nil {
		logrus.Fatalf("error exporting ships: %v", err)
	}
	logrus.Infof("snapshot written to %s", object)
}
