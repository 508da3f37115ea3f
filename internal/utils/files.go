package utils

import (
	"bufio"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
)

func ReadFloatPairs(filename string) ([][2]float64, error) {
	file, err := os.Open(filename)
	if err != nil {
		return nil, fmt.Errorf("error opening file: %w", err)
	}
	defer file.Close()

	var result [][2]float64

	scanner := bufio.NewScanner(file)
	for scanner.Scan() {
		line := scanner.Text()
		if i := strings.IndexByte(line, '#'); i >= 0 {
			line = line[:i]
		}
		parts := strings.Fields(line)

		if len(parts) == 0 {
			continue
		}

		if len(parts) != 2 {
			return nil, fmt.Errorf("invalid format in line: %q - expected 2 numbers, got %d", line, len(parts))
		}

		x, err := strconv.ParseFloat(parts[0], 64)
		if err != nil {
			return nil, fmt.Errorf("error parsing float in line %q: %w", line, err)
		}

		y, err := strconv.ParseFloat(parts[1], 64)
		if err != nil {
			return nil, fmt.Errorf("error parsing float in line %q: %w", line, err)
		}

		result = append(result, [2]float64{x, y})
	}

	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("error reading file: %w", err)
	}

	return result, nil
}

// GetFilename strips directories and the extension.
func GetFilename(filePath string) string {
	base := filepath.Base(filePath)
	return strings.TrimSuffix(base, filepath.Ext(base))
}

// OpenFile creates <outputPath>/<name>/<suffix>.<ext> when makeDir is set,
// and <outputPath>/<name>_<suffix>.<ext> otherwise.
func OpenFile(makeDir bool, outputPath, name, suffix, ext string) (*os.File, error) {
	if outputPath == "" {
		outputPath = "."
	}
	if makeDir {
		dir := filepath.Join(outputPath, name)
		if err := os.MkdirAll(dir, 0750); err != nil {
			return nil, err
		}
		return os.Create(filepath.Join(dir, suffix+"."+ext))
	}
	if err := os.MkdirAll(outputPath, 0750); err != nil {
		return nil, err
	}
	return os.Create(filepath.Join(outputPath, name+"_"+suffix+"."+ext))
}
