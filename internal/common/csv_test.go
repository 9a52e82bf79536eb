package common_test

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"fjacquet/bookctl/internal/bookingerror"
	"fjacquet/bookctl/internal/common"
	"fjacquet/bookctl/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReadCSVFile(t *testing.T) {
	tmpDir := t.TempDir()

	csvContent := `user_id,name,email,password,role
A001,System Admin,admin@booking.com,admin123,admin
C100,Asha,asha@example.com,secret,customer
C200,Zoya,zoya@example.com,pw,`

	path := filepath.Join(tmpDir, "users.csv")
	require.NoError(t, os.WriteFile(path, []byte(csvContent), 0600))

	rows, err := common.ReadCSVFile[models.UserRow](path)
	require.NoError(t, err)
	require.Len(t, rows, 3)

	assert.Equal(t, "A001", rows[0].UserID)
	assert.Equal(t, "System Admin", rows[0].Name)
	assert.Equal(t, "admin", rows[0].Role)

	assert.Equal(t, "C100", rows[1].UserID)
	assert.Equal(t, "secret", rows[1].Password)

	// Trailing empty role column reads as an empty string
	assert.Equal(t, "", rows[2].Role)
}

func TestReadCSVFileNotFound(t *testing.T) {
	_, err := common.ReadCSVFile[models.UserRow](filepath.Join(t.TempDir(), "missing.csv"))
	require.Error(t, err)

	var notFound *bookingerror.NotFoundError
	assert.True(t, errors.As(err, &notFound))
}

func TestSetDelimiter(t *testing.T) {
	original := common.Delimiter
	defer common.SetDelimiter(original)

	tmpDir := t.TempDir()
	path := filepath.Join(tmpDir, "users.csv")
	content := "user_id;name;email;password;role\nC100;Asha;asha@example.com;secret;customer\n"
	require.NoError(t, os.WriteFile(path, []byte(content), 0600))

	common.SetDelimiter(';')
	rows, err := common.ReadCSVFile[models.UserRow](path)
	require.NoError(t, err)
	require.Len(t, rows, 1)
	assert.Equal(t, "Asha", rows[0].Name)
}
