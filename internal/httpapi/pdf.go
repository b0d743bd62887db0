// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package httpapi

import (
	"net/http"
	"os"
	"os/exec"
	"path/filepath"

	"smartpress/internal/apperror"
	"smartpress/internal/model"
)

// handlePDFExport writes rp's full HTML document to a temp file under
// pdf.temp_dir, invokes the configured headless browser to print it to
// PDF, streams the result back, and removes every temp artifact.
func (s *Server) handlePDFExport(w http.ResponseWriter, rp *model.RenderedPage) {
	cfg := s.config.Current()
	if cfg == nil || cfg.PDF == nil {
		writeError(w, apperror.Config("PDF generation not enabled", nil))
		return
	}

	tempDir, err := os.MkdirTemp(cfg.PDF.TempDir, "smartpress-pdf-")
	if err != nil {
		writeError(w, apperror.Internal("create PDF temp dir", err))
		return
	}
	defer os.RemoveAll(tempDir)

	inputPath := filepath.Join(tempDir, "input.html")
	if err := os.WriteFile(inputPath, []byte(rp.RenderFullHTMLPage()), 0o644); err != nil {
		writeError(w, apperror.Internal("write PDF input", err))
		return
	}

	outputPath := filepath.Join(tempDir, "output.pdf")
	cmd := exec.Command(cfg.PDF.ChromiumPath,
		"--headless",
		"--disable-gpu",
		"--print-to-pdf="+outputPath,
		"--no-pdf-header-footer",
		inputPath,
	)
	if err := cmd.Run(); err != nil {
		writeError(w, apperror.Internal("run headless browser", err))
		return
	}

	pdfBytes, err := os.ReadFile(outputPath)
	if err != nil {
		writeError(w, apperror.Internal("read generated PDF", err))
		return
	}

	w.Header().Set("Content-Type", "application/pdf")
	w.Write(pdfBytes)
}
