package monday

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/helmling/zeiterfassung-backend/internal/domain"
)

type itemsPageData struct {
	Boards []struct {
		ItemsPage struct {
			Items  []Item `json:"items"`
			Cursor string `json:"cursor"`
		} `json:"items_page"`
	} `json:"boards"`
}

// AllItems fetches every item on a board through cursor pagination.
// Pages are concatenated in the order received; an empty board yields an
// empty slice. The page size lives in the query text; it is an API cap,
// not a tunable.
func (c *Client) AllItems(ctx context.Context, boardID string) ([]Item, error) {
	all := []Item{}
	cursor := ""
	page := 1

	for {
		variables := map[string]any{"boards": []string{boardID}}
		if cursor != "" {
			variables["cursor"] = cursor
		}

		data, err := c.Execute(ctx, itemsPageQuery, variables, fmt.Sprintf("items_page#%d", page))
		if err != nil {
			return nil, err
		}

		var parsed itemsPageData
		if err := json.Unmarshal(data, &parsed); err != nil {
			return nil, fmt.Errorf("items_page: decode: %w: %w", domain.ErrTransport, err)
		}
		if len(parsed.Boards) == 0 {
			return nil, fmt.Errorf("%w: board %s not found", domain.ErrConfiguration, boardID)
		}

		slice := parsed.Boards[0].ItemsPage
		all = append(all, slice.Items...)

		if slice.Cursor == "" {
			return all, nil
		}
		cursor = slice.Cursor
		page++
	}
}

type linkedItemsData struct {
	Items []struct {
		LinkedItems []Item `json:"linked_items"`
	} `json:"items"`
}

// LinkedItems returns the items on linkedBoardID that the relation column
// of the given item points to. An unknown item yields an empty slice, not
// an error.
func (c *Client) LinkedItems(ctx context.Context, itemID, relationColumnID, linkedBoardID string) ([]Item, error) {
	data, err := c.Execute(ctx, linkedItemsQuery, map[string]any{
		"items":    []string{itemID},
		"relation": relationColumnID,
		"board":    linkedBoardID,
	}, "linked_items")
	if err != nil {
		return nil, err
	}

	var parsed linkedItemsData
	if err := json.Unmarshal(data, &parsed); err != nil {
		return nil, fmt.Errorf("linked_items: decode: %w: %w", domain.ErrTransport, err)
	}
	if len(parsed.Items) == 0 {
		return []Item{}, nil
	}
	if parsed.Items[0].LinkedItems == nil {
		return []Item{}, nil
	}
	return parsed.Items[0].LinkedItems, nil
}

type createItemData struct {
	CreateItem struct {
		ID string `json:"id"`
	} `json:"create_item"`
}

// CreateItem creates an item with the given column values (already encoded
// as the API's JSON-within-JSON string) and returns its ID.
func (c *Client) CreateItem(ctx context.Context, boardID, name, columnValues, label string) (string, error) {
	data, err := c.Execute(ctx, createItemMutation, map[string]any{
		"board":  boardID,
		"name":   name,
		"values": columnValues,
	}, label)
	if err != nil {
		return "", err
	}

	var parsed createItemData
	if err := json.Unmarshal(data, &parsed); err != nil {
		return "", fmt.Errorf("%s: decode: %w: %w", label, domain.ErrTransport, err)
	}
	if parsed.CreateItem.ID == "" {
		return "", fmt.Errorf("%s: %w: response carries no item id", label, domain.ErrTransport)
	}
	return parsed.CreateItem.ID, nil
}
