//go:build unit

package filesystem_test

import (
	"io"
	"testing"

	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rios0rios0/pkgcompare/internal/infrastructure/repositories/filesystem"
)

func TestRepository_ReadLines(t *testing.T) {
	t.Parallel()

	t.Run("should keep line terminators", func(t *testing.T) {
		t.Parallel()

		// given
		fs := afero.NewMemMapFs()
		require.NoError(t, afero.WriteFile(fs, "/node1.txt", []byte("bash-5.1\ncurl-7.80\r\n"), 0o644))
		repo := filesystem.NewRepository(fs)

		// when
		lines, err := repo.ReadLines("/node1.txt")

		// then
		require.NoError(t, err)
		assert.Equal(t, []string{"bash-5.1\n", "curl-7.80\r\n"}, lines)
	})

	t.Run("should leave an unterminated last line as is", func(t *testing.T) {
		t.Parallel()

		// given
		fs := afero.NewMemMapFs()
		require.NoError(t, afero.WriteFile(fs, "/node1.txt", []byte("bash-5.1\nwget-1.21"), 0o644))
		repo := filesystem.NewRepository(fs)

		// when
		lines, err := repo.ReadLines("/node1.txt")

		// then
		require.NoError(t, err)
		assert.Equal(t, []string{"bash-5.1\n", "wget-1.21"}, lines)
	})

	t.Run("should return no lines for an empty file", func(t *testing.T) {
		t.Parallel()

		// given
		fs := afero.NewMemMapFs()
		require.NoError(t, afero.WriteFile(fs, "/empty.txt", nil, 0o644))
		repo := filesystem.NewRepository(fs)

		// when
		lines, err := repo.ReadLines("/empty.txt")

		// then
		require.NoError(t, err)
		assert.Empty(t, lines)
	})

	t.Run("should return error for a missing file", func(t *testing.T) {
		t.Parallel()

		// given
		repo := filesystem.NewRepository(afero.NewMemMapFs())

		// when
		lines, err := repo.ReadLines("/missing.txt")

		// then
		require.Error(t, err)
		assert.Nil(t, lines)
	})
}

func TestRepository_Exists(t *testing.T) {
	t.Parallel()

	t.Run("should report existing and missing files", func(t *testing.T) {
		t.Parallel()

		// given
		fs := afero.NewMemMapFs()
		require.NoError(t, afero.WriteFile(fs, "/node1.txt", []byte("x"), 0o644))
		repo := filesystem.NewRepository(fs)

		// then
		assert.True(t, repo.Exists("/node1.txt"))
		assert.False(t, repo.Exists("/node2.txt"))
		assert.False(t, repo.Exists(""))
	})
}

func TestRepository_Create(t *testing.T) {
	t.Parallel()

	t.Run("should truncate an existing report", func(t *testing.T) {
		t.Parallel()

		// given
		fs := afero.NewMemMapFs()
		require.NoError(t, afero.WriteFile(fs, "/report.html", []byte("previous content"), 0o644))
		repo := filesystem.NewRepository(fs)

		// when
		writer, err := repo.Create("/report.html")
		require.NoError(t, err)
		_, writeErr := io.WriteString(writer, "new")
		require.NoError(t, writeErr)
		require.NoError(t, writer.Close())

		// then
		content, readErr := afero.ReadFile(fs, "/report.html")
		require.NoError(t, readErr)
		assert.Equal(t, "new", string(content))
	})
}
