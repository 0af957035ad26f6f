package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"time"

	"github.com/Hayal27/Cv-generator/internal/domain"
	"github.com/Hayal27/Cv-generator/internal/usecase"
	infra "github.com/Hayal27/Cv-generator/pkg/infrastructure"

	"github.com/google/uuid"
)

// fileStore serves one CV loaded from disk; this harness exercises the
// export path end to end without a database.
type fileStore struct {
	cv *domain.CV
}

func (s *fileStore) GetCV(ctx context.Context, id uuid.UUID) (*domain.CV, error) {
	return s.cv, nil
}

func main() {
	if len(os.Args) < 2 {
		fmt.Fprintln(os.Stderr, "usage: export_cv <cv.json> [pdf|docx]")
		os.Exit(2)
	}
	in := os.Args[1]
	format := usecase.FormatPDF
	if len(os.Args) > 2 {
		format = usecase.ExportFormat(os.Args[2])
	}

	b, err := os.ReadFile(in)
	if err != nil {
		fmt.Fprintf(os.Stderr, "read cv: %v\n", err)
		os.Exit(2)
	}
	var cv domain.CV
	if err := json.Unmarshal(b, &cv); err != nil {
		fmt.Fprintf(os.Stderr, "unmarshal: %v\n", err)
		os.Exit(2)
	}
	cv.IsPublic = true

	renderer := infra.NewChromedpRenderer(os.Getenv("CHROME_PATH"), 60*time.Second)
	exporter := usecase.NewExporter(&fileStore{cv: &cv}, usecase.NewRegistry(nil, nil), renderer)

	res, err := exporter.Export(context.Background(), uuid.Nil, cv.ID, format)
	if err != nil {
		fmt.Fprintf(os.Stderr, "export: %v\n", err)
		os.Exit(1)
	}
	if err := os.WriteFile(res.Filename, res.Data, 0o644); err != nil {
		fmt.Fprintf(os.Stderr, "write out: %v\n", err)
		os.Exit(1)
	}
	fmt.Printf("wrote %s (%d bytes)\n", res.Filename, len(res.Data))
}
