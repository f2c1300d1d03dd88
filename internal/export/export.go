// Package export renders a validated TrustChain into the two canonical
// serialisations from spec §6: a structured JSON document and a
// human-readable text report, and writes both to the configured
// exports directory.
package export

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/jacksonbarreto/dnssec-chain-validator/config"
	"github.com/jacksonbarreto/dnssec-chain-validator/pkg/models"
)

// ToJSON renders chain into the metadata/overall_status/chain_path/
// zones document shape defined by spec §6 "JSON export".
func ToJSON(chain *models.TrustChain) ([]byte, error) {
	data, err := json.MarshalIndent(chain.ExportView(), "", "  ")
	if err != nil {
		return nil, fmt.Errorf("export: failed to marshal JSON: %w", err)
	}
	return data, nil
}

// SanitizeDomain replaces "." with "_" and strips any trailing dot, per
// spec §6 "Persisted state": "the sanitiser replaces . with _ and
// strips any trailing dot".
func SanitizeDomain(domain string) string {
	trimmed := strings.TrimSuffix(domain, ".")
	return strings.ReplaceAll(trimmed, ".", "_")
}

// filenameStem builds the "<domain_sanitised>_<YYYYmmdd_HHMMSS>" stem
// shared by the JSON and text export files for chain, stamped at stamp.
func filenameStem(chain *models.TrustChain, stamp time.Time) string {
	return fmt.Sprintf("%s_%s", SanitizeDomain(chain.TargetDomain), stamp.Format("20060102_150405"))
}

// Write renders both the JSON and text serialisations for chain and
// writes them under config.App().ExportDir, creating the directory if
// necessary. It returns the two file paths written.
func Write(chain *models.TrustChain, stamp time.Time) (jsonPath, textPath string, err error) {
	dir := config.App().ExportDir
	if mkErr := os.MkdirAll(dir, 0o755); mkErr != nil {
		return "", "", fmt.Errorf("export: failed to create export dir %s: %w", dir, mkErr)
	}

	stem := filenameStem(chain, stamp)
	jsonPath = filepath.Join(dir, stem+".json")
	textPath = filepath.Join(dir, stem+".txt")

	jsonData, jsonErr := ToJSON(chain)
	if jsonErr != nil {
		return "", "", jsonErr
	}
	if writeErr := os.WriteFile(jsonPath, jsonData, 0o644); writeErr != nil {
		return "", "", fmt.Errorf("export: failed to write %s: %w", jsonPath, writeErr)
	}

	textData := ToText(chain)
	if writeErr := os.WriteFile(textPath, []byte(textData), 0o644); writeErr != nil {
		return "", "", fmt.Errorf("export: failed to write %s: %w", textPath, writeErr)
	}

	return jsonPath, textPath, nil
}
