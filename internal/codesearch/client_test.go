package codesearch

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"docnav/internal/models"
)

func TestBuildQueryScopedCategories(t *testing.T) {
	q := buildQuery("matrix multiply", models.CategoryCUDAGeneral)
	assert.Equal(t, "matrix multiply repo:NVIDIA/cuda-samples language:cuda", q)

	q = buildQuery("grpc client", models.CategoryTriton)
	assert.Equal(t, "grpc client repo:triton-inference-server/server", q)
}

func TestBuildQueryUnscopedCategorySearchesOfficialRepos(t *testing.T) {
	q := buildQuery("enable mig", models.CategoryMIGConfig)
	assert.True(t, strings.HasPrefix(q, "enable mig "))
	assert.Contains(t, q, "repo:NVIDIA/cuda-samples")
	assert.Contains(t, q, "repo:NVIDIA/TensorRT")
	assert.Contains(t, q, "repo:NVIDIA/NeMo")
}

func TestNewClientDefaultsRPS(t *testing.T) {
	c := NewClient("", 0)
	assert.NotNil(t, c.gh)
	assert.InDelta(t, 1.0, float64(c.limiter.Limit()), 0.001)
}
