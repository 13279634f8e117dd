package config

import "os"

// GetExcelTempDir returns the directory where generated export workbooks are
// written, creating it on first use.
func GetExcelTempDir() (string, error) {
	dir := getEnv("EXCEL_TEMP_DIR", "/tmp/ops_asset_excel")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", err
	}
	return dir, nil
}
