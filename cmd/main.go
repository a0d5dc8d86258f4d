package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"screendiff/config"
	telegram "screendiff/internal/api"
	app "screendiff/internal/application"
	"screendiff/internal/container"
	"screendiff/internal/domain/port"
	"screendiff/internal/infrastructure/storage"
	"screendiff/internal/infrastructure/vision"
)

func main() {
	manifestPtr := flag.String("manifest", "", "Путь к YAML-манифесту с парами изображений")
	refPtr := flag.String("reference", "reference_images", "Директория эталонных изображений")
	curPtr := flag.String("current", "screenshots", "Директория текущих изображений")
	thresholdsPtr := flag.String("thresholds", "", "Путь к YAML-файлу с порогами")
	outPtr := flag.String("out", "", "Директория отчётов (по умолчанию из REPORTS_DIR)")
	flag.Parse()

	cfg, err := config.Load(*thresholdsPtr)
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}
	if *outPtr != "" {
		cfg.ReportsDir = *outPtr
	}

	pairs, err := collectPairs(*manifestPtr, *refPtr, *curPtr)
	if err != nil {
		log.Fatalf("Failed to collect image pairs: %v", err)
	}
	if len(pairs) == 0 {
		log.Fatal("No image pairs to compare")
	}

	// Выбираем движок сравнения
	var differ port.ImageDiffer = vision.NewPixelDiffer(cfg.Thresholds.MinRegionArea)
	if cfg.UseGoCV {
		differ = vision.NewGoCVDiffer(cfg.Thresholds.MinRegionArea)
	}

	c := container.New(differ, cfg)

	log.Printf("Comparing %d image pairs...", len(pairs))
	results := c.ComparisonService.CompareBatch(context.Background(), pairs)
	c.Aggregator.Add(results...)

	for _, result := range results {
		switch {
		case result.Failed():
			fmt.Printf("  ⚠️ ERROR %s: %s\n", result.TestName, result.Error)
		case result.BugsFound:
			fmt.Printf("  ❌ FAIL (%s) %s — similarity %.3f\n", result.Severity, result.TestName, result.Similarity)
		default:
			fmt.Printf("  ✅ PASS %s — similarity %.3f\n", result.TestName, result.Similarity)
		}
	}

	summary := c.Aggregator.Summarize()

	writer, err := storage.NewReportWriter(cfg.ReportsDir)
	if err != nil {
		log.Fatalf("Failed to create report writer: %v", err)
	}

	reportPath, err := writer.WriteJSON(results, summary)
	if err != nil {
		log.Fatalf("Failed to write report: %v", err)
	}

	for _, result := range results {
		if result.Visualization == nil {
			continue
		}
		if _, err := writer.WriteVisualization(result.TestName, result.Visualization); err != nil {
			log.Printf("Failed to write visualization for %s: %v", result.TestName, err)
		}
	}

	fmt.Printf("\nTotal: %d | Passed: %d | Failed: %d | Errors: %d\n",
		summary.Total, summary.Passed, summary.Failed, summary.Errors)
	if summary.Passed+summary.Failed > 0 {
		fmt.Printf("Mean similarity: %.3f | Mean difference: %.1f%%\n",
			summary.MeanSimilarity, summary.MeanDiffPercent)
	}
	fmt.Printf("Report saved to: %s\n", reportPath)

	if cfg.TelegramToken != "" && cfg.TelegramChatID != 0 {
		notifier, err := telegram.NewNotifier(cfg.TelegramToken, cfg.TelegramChatID)
		if err != nil {
			log.Fatalf("Failed to create notifier: %v", err)
		}
		if err := notifier.NotifyBatch(summary, results); err != nil {
			log.Printf("Failed to send notification: %v", err)
		}
	}
}

// collectPairs собирает пары либо из манифеста, либо по совпадению имён
// файлов в директориях эталонов и текущих снимков
func collectPairs(manifestPath, referenceDir, currentDir string) ([]app.ImagePair, error) {
	if manifestPath != "" {
		manifest, err := app.ReadManifest(manifestPath)
		if err != nil {
			return nil, err
		}
		return manifest.Pairs, nil
	}
	return pairDirectories(referenceDir, currentDir)
}

// pairDirectories сопоставляет эталоны и текущие снимки по имени файла
func pairDirectories(referenceDir, currentDir string) ([]app.ImagePair, error) {
	entries, err := os.ReadDir(referenceDir)
	if err != nil {
		return nil, err
	}

	var pairs []app.ImagePair
	for _, entry := range entries {
		if entry.IsDir() || !isImageFile(entry.Name()) {
			continue
		}
		pairs = append(pairs, app.ImagePair{
			Reference: filepath.Join(referenceDir, entry.Name()),
			Current:   filepath.Join(currentDir, entry.Name()),
			Name:      strings.TrimSuffix(entry.Name(), filepath.Ext(entry.Name())),
		})
	}

	sort.Slice(pairs, func(i, j int) bool { return pairs[i].Name < pairs[j].Name })
	return pairs, nil
}

func isImageFile(name string) bool {
	switch strings.ToLower(filepath.Ext(name)) {
	case ".png", ".jpg", ".jpeg", ".gif":
		return true
	}
	return false
}
