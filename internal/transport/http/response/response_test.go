package response

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestError(t *testing.T) {
	assert.Equal(t, "Unauthorized Access", Error(CodeUnauthorized, "").Message)
	assert.Equal(t, "custom", Error(CodeBadRequest, "custom").Message)
	assert.Equal(t, http.StatusText(http.StatusTeapot), Error(http.StatusTeapot, "").Message)
}
