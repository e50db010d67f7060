package crowdin

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/tidwall/gjson"

	"github.com/aitsys/crowdin-handover/models"
)

const viewerQuery = `
  query GetUserInfo {
    viewer {
      username
      isAdmin
      id
      createdAt
    }
  }
`

// Only totalCount is read; the page size on translations does not matter.
const translationsQueryFormat = `
  query GetUserTotalTranslations {
    viewer {
      projects(first: 1) {
        edges {
          node {
            id
            identifier
            description
            nodeId
            name
            translations(userId: %d, first: 10) {
              totalCount
            }
          }
        }
      }
    }
  }
`

// FetchViewer returns the authenticated user
func (c *Client) FetchViewer(ctx context.Context, accessToken string) (*models.CrowdinUser, error) {
	data, err := c.Query(ctx, accessToken, viewerQuery)
	if err != nil {
		return nil, err
	}

	viewer := data.Get("viewer")
	if !viewer.IsObject() {
		return nil, fmt.Errorf("%w: missing viewer", ErrUnexpectedResponse)
	}
	for _, field := range []string{"username", "isAdmin", "id", "createdAt"} {
		if !viewer.Get(field).Exists() {
			return nil, fmt.Errorf("%w: viewer has no %s", ErrUnexpectedResponse, field)
		}
	}

	var user models.CrowdinUser
	if err := json.Unmarshal([]byte(viewer.Raw), &user); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrUnexpectedResponse, err)
	}

	return &user, nil
}

// FetchTranslationCount returns how many translations userID made in the
// viewer's first project. Other projects are not counted.
func (c *Client) FetchTranslationCount(ctx context.Context, accessToken string, userID int64) (int, error) {
	data, err := c.Query(ctx, accessToken, fmt.Sprintf(translationsQueryFormat, userID))
	if err != nil {
		return 0, err
	}

	edges := data.Get("viewer.projects.edges")
	if !edges.IsArray() {
		return 0, fmt.Errorf("%w: missing project edges", ErrUnexpectedResponse)
	}
	if len(edges.Array()) == 0 {
		return 0, ErrNoProjects
	}

	total := edges.Get("0.node.translations.totalCount")
	if total.Type != gjson.Number {
		return 0, fmt.Errorf("%w: missing translations totalCount", ErrUnexpectedResponse)
	}

	return int(total.Int()), nil
}
