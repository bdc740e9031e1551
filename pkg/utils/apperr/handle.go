package apperr

import (
	"context"

	"github.com/m-mizutani/ctxlog"
)

// Handle logs an error that must not change the outcome of the operation that
// produced it. Best-effort steps (reaction attach, welcome post, announcement,
// role assignment) funnel their failures through here.
func Handle(ctx context.Context, err error) {
	ctxlog.From(ctx).Error("application error", "error", err)
}
