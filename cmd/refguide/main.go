package main

import (
	"flag"
	"os"

	"go.uber.org/zap"

	"inquirykit/internal/refguide"
	"inquirykit/pkg/logger"
)

func main() {
	out := flag.String("o", "inquiry-reference-guide.docx", "output path for the reference guide")
	flag.Parse()

	log := logger.NewLogger()
	defer log.Sync()

	f, err := os.Create(*out)
	if err != nil {
		log.Fatal("could not create output file", zap.Error(err))
	}
	defer f.Close()

	if err := refguide.Write(f); err != nil {
		log.Fatal("reference guide build failed", zap.Error(err))
	}

	log.Info("Reference guide written", zap.String("path", *out))
}
