package main

import (
	"flag"
	"time"

	"go.uber.org/zap"

	"inquirykit/internal/workbook"
	"inquirykit/pkg/logger"
)

func main() {
	out := flag.String("o", "inquiry-workbook.xlsx", "output path for the workbook")
	flag.Parse()

	log := logger.NewLogger()
	defer log.Sync()

	f, err := workbook.Build(time.Now())
	if err != nil {
		log.Fatal("workbook build failed", zap.Error(err))
	}

	if err := f.SaveAs(*out); err != nil {
		log.Fatal("workbook save failed", zap.Error(err))
	}

	log.Info("Workbook written", zap.String("path", *out))
}
