package insight

import (
	"context"
	"fmt"
	"strings"

	"esg-sunshine/internal/integrations/paramstore"
)

// ResolveAPIKey picks the static key when set, otherwise reads the token
// stored at paramName. ErrConfigurationMissing is returned when neither
// source is available.
func ResolveAPIKey(ctx context.Context, static string, getter paramstore.Getter, paramName string) (string, error) {
	if key := strings.TrimSpace(static); key != "" {
		return key, nil
	}
	if getter == nil || strings.TrimSpace(paramName) == "" {
		return "", ErrConfigurationMissing
	}
	token, err := paramstore.FetchToken(ctx, getter, paramName)
	if err != nil {
		return "", fmt.Errorf("insight: resolve api key: %w", err)
	}
	return token, nil
}
