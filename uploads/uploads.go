// uploads は領収書ファイルの保存と配信を扱います。
package uploads

import (
	"errors"
	"fmt"
	"io"
	"net/http"
	"os"
	"path/filepath"
	"strings"

	"shroomworks/config"
)

var allowedExtensions = map[string]bool{
	".png":  true,
	".jpg":  true,
	".jpeg": true,
	".pdf":  true,
}

// AllowedFile は拡張子が許可リストに含まれるかを返します。
func AllowedFile(filename string) bool {
	return allowedExtensions[strings.ToLower(filepath.Ext(filename))]
}

// IsImageFile は編集画面でインライン表示するかどうかの判定です。
func IsImageFile(filename string) bool {
	switch strings.ToLower(filepath.Ext(filename)) {
	case ".png", ".jpg", ".jpeg":
		return true
	}
	return false
}

// SecureFilename はパストラバーサルを除去し、ファイル名を英数字と
// "._-" だけに丸めます。
func SecureFilename(name string) string {
	name = filepath.Base(name)
	var sb strings.Builder
	for _, r := range name {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9':
			sb.WriteRune(r)
		case r == '.' || r == '-' || r == '_':
			sb.WriteRune(r)
		default:
			sb.WriteRune('_')
		}
	}
	cleaned := strings.Trim(sb.String(), "._")
	return cleaned
}

// SaveReceiptFile はリクエスト中の添付ファイルを保存し、保存名を返します。
// ファイルなし・空ファイル名・許可外拡張子はいずれも保存せず "" を返します
// (許可外は黙って捨てる仕様)。
func SaveReceiptFile(r *http.Request, field, dir string) (string, error) {
	file, header, err := r.FormFile(field)
	if err != nil {
		if errors.Is(err, http.ErrMissingFile) || errors.Is(err, http.ErrNotMultipart) {
			return "", nil
		}
		return "", fmt.Errorf("failed to read uploaded file: %w", err)
	}
	defer file.Close()

	if header.Filename == "" || !AllowedFile(header.Filename) {
		return "", nil
	}

	filename := SecureFilename(header.Filename)
	if filename == "" {
		return "", nil
	}

	dst, err := os.Create(filepath.Join(dir, filename))
	if err != nil {
		return "", fmt.Errorf("failed to create upload file %s: %w", filename, err)
	}
	defer dst.Close()

	if _, err := io.Copy(dst, file); err != nil {
		return "", fmt.Errorf("failed to save upload file %s: %w", filename, err)
	}
	return filename, nil
}

// UploadedFileHandler は /uploads/{filename} でアップロード済みファイルを
// 配信します。
func UploadedFileHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		name := strings.TrimPrefix(r.URL.Path, "/uploads/")
		if name == "" {
			http.NotFound(w, r)
			return
		}
		name = SecureFilename(name)
		if name == "" {
			http.NotFound(w, r)
			return
		}
		cfg := config.GetConfig()
		http.ServeFile(w, r, filepath.Join(cfg.UploadFolderPath, name))
	}
}
