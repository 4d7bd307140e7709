package contextutil_test

import (
	"context"
	"testing"

	"aakb-wms/internal/shared/contextutil"

	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"
)

func TestContextValues(t *testing.T) {
	ctx := context.Background()
	assert.Empty(t, contextutil.GetRequestID(ctx))

	ctx = contextutil.WithRequestID(ctx, "rid-1")
	ctx = contextutil.WithProfileID(ctx, "p-1")
	ctx = contextutil.WithRole(ctx, "swamiji")

	assert.Equal(t, contextutil.Metadata{RequestID: "rid-1", ProfileID: "p-1"}, contextutil.ExtractMetadata(ctx))
	assert.Equal(t, "swamiji", contextutil.GetRole(ctx))
}

func TestGetLogger_Fallbacks(t *testing.T) {
	def := zap.NewExample()
	assert.Same(t, def, contextutil.GetLogger(context.Background(), def))
	assert.NotNil(t, contextutil.GetLogger(context.Background(), nil))

	scoped := zap.NewExample().Named("scoped")
	ctx := contextutil.WithLogger(context.Background(), scoped)
	assert.Same(t, scoped, contextutil.GetLogger(ctx, def))
}
