package snapshot

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
)

func Test_nextFilename(t *testing.T) {
	assert.Equal(t, filepath.Join("testdata", "TestA_sub-0.json"), nextFilename("TestA/sub"))
	assert.Equal(t, filepath.Join("testdata", "TestA_sub-1.json"), nextFilename("TestA/sub"))
	assert.Equal(t, filepath.Join("testdata", "TestB-0.json"), nextFilename("TestB"))
}

func TestValidateSnapshot(t *testing.T) {
	dir := t.TempDir()
	wd, err := os.Getwd()
	if err != nil {
		t.Fatal(err)
	}

	if err := os.Chdir(dir); err != nil {
		t.Fatal(err)
	}
	defer func() { _ = os.Chdir(wd) }()

	obj := map[string]int{"score": 21}

	// first call writes the snapshot
	ValidateSnapshot(t, obj)
	b, err := os.ReadFile(filepath.Join("testdata", "TestValidateSnapshot-0.json"))
	assert.NoError(t, err)
	assert.Equal(t, "{\n  \"score\": 21\n}\n", string(b))

	// a matching snapshot passes
	if err := os.WriteFile(filepath.Join("testdata", "TestValidateSnapshot-1.json"), b, 0644); err != nil {
		t.Fatal(err)
	}
	ValidateSnapshot(t, obj)
}
