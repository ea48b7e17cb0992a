package utils

import (
	"bufio"
	"os"
	"path"
	"sort"
	"strconv"
	"strings"

	"github.com/twmb/murmur3"
)

func HashString(s string) uint64 {
	hash := murmur3.New64()
	_, err := hash.Write([]byte(s))
	if err != nil {
		panic(err)
	}
	return hash.Sum64()
}

func HashBytes(bytes ...[]byte) uint64 {
	hash := murmur3.New64()
	for _, b := range bytes {
		_, err := hash.Write(b)
		if err != nil {
			panic(err)
		}
	}
	return hash.Sum64()
}

// HexHash is HashString formatted as a fixed width hex string.
func HexHash(s string) string {
	h := strconv.FormatUint(HashString(s), 16)
	if len(h) < 16 {
		h = strings.Repeat("0", 16-len(h)) + h
	}
	return h
}

func ReadList(filePath string) ([]string, error) {
	file, err := os.Open(filePath)
	if err != nil {
		return nil, err
	}
	defer file.Close()

	scanner := bufio.NewScanner(file)

	var result []string
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		result = append(result, line)
	}

	if err := scanner.Err(); err != nil {
		return nil, err
	}

	return result, nil
}

// ListFiles returns sorted paths of regular files in dirPath ending with suffix.
func ListFiles(dirPath string, suffix string) ([]string, error) {
	entries, err := os.ReadDir(dirPath)
	if err != nil {
		return nil, err
	}

	var result []string
	for _, entry := range entries {
		if entry.IsDir() || !strings.HasSuffix(entry.Name(), suffix) {
			continue
		}
		result = append(result, path.Join(dirPath, entry.Name()))
	}
	sort.Strings(result)
	return result, nil
}
