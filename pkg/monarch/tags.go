package monarch

import (
	"context"

	"github.com/pkg/errors"
)

// tagService implements the TagService interface
type tagService struct {
	client *Client
}

// List retrieves all tags
func (s *tagService) List(ctx context.Context) ([]*Tag, error) {
	query := s.client.loadQuery("tags/list.graphql")

	var result struct {
		Tags []*Tag `json:"tags"`
	}

	if err := s.client.executeGraphQL(ctx, query, nil, &result); err != nil {
		return nil, errors.Wrap(err, "failed to get tags")
	}

	return result.Tags, nil
}
