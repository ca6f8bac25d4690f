// This file contains the logic for translating HCL schema structs into the
// format-agnostic configuration model defined in the config package.

package hcl

import (
	"context"
	"errors"
	"fmt"

	"github.com/hashicorp/hcl/v2"
	"github.com/specialistvlad/forkliftgo/internal/config"
	"github.com/specialistvlad/forkliftgo/internal/schema"
)

// translateFloor evaluates the attributes of a floor block and converts it
// into the agnostic model. Unset optional attributes take their value from
// defaults.
func translateFloor(ctx context.Context, s *schema.Floor, evalCtx *hcl.EvalContext, defaults config.Defaults) (*config.Floor, error) {
	floor := &config.Floor{
		Name:      s.Name,
		Marker:    defaults.Marker,
		Threshold: defaults.Threshold,
	}

	set, err := evaluate(ctx, s.Layout, evalCtx, &floor.Layout)
	if err != nil {
		return nil, fmt.Errorf("invalid layout: %w", err)
	}
	if !set {
		return nil, errors.New("invalid layout: layout is required and must not be null")
	}

	var marker string
	set, err = evaluate(ctx, s.Marker, evalCtx, &marker)
	if err != nil {
		return nil, fmt.Errorf("invalid marker: %w", err)
	}
	if set {
		if floor.Marker, err = config.ParseMarker(marker); err != nil {
			return nil, err
		}
	}

	if _, err := evaluate(ctx, s.Threshold, evalCtx, &floor.Threshold); err != nil {
		return nil, fmt.Errorf("invalid threshold: %w", err)
	}

	return floor, nil
}
