package slug

import (
	"context"
	"fmt"
	"strings"
	"testing"

	"shortlink/internal/repository/mocks"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestGenerateUnique_FreeSlug(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockStorage := mocks.NewMockStorage(ctrl)
	mockStorage.EXPECT().
		SlugExists(gomock.Any(), gomock.Any()).
		Return(false, nil)

	generator := NewGenerator(mockStorage)

	code, err := generator.GenerateUnique(context.Background())

	require.NoError(t, err)
	assert.Len(t, code, codeLength)
	for _, r := range code {
		assert.True(t, strings.ContainsRune(codeAlphabet, r), "недопустимый символ %q", r)
	}
}

func TestGenerateUnique_AllAttemptsTaken(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockStorage := mocks.NewMockStorage(ctrl)
	mockStorage.EXPECT().
		SlugExists(gomock.Any(), gomock.Any()).
		Return(true, nil).
		Times(maxAttempts)

	generator := NewGenerator(mockStorage)

	code, err := generator.GenerateUnique(context.Background())

	// После исчерпания попыток генератор отдает код из хвоста часов
	require.NoError(t, err)
	assert.NotEmpty(t, code)
	assert.LessOrEqual(t, len(code), timeCodeLength)
	assert.NotEqual(t, codeLength, len(code))
}

func TestGenerateUnique_StorageError(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockStorage := mocks.NewMockStorage(ctrl)
	mockStorage.EXPECT().
		SlugExists(gomock.Any(), gomock.Any()).
		Return(false, fmt.Errorf("connection refused"))

	generator := NewGenerator(mockStorage)

	_, err := generator.GenerateUnique(context.Background())

	require.Error(t, err)
	assert.Contains(t, err.Error(), "slug availability")
}
