package monday

// GraphQL documents used against the monday.com API. All of them take
// their inputs as variables; values are never spliced into the query text.

const boardColumnsQuery = `
	query BoardColumns($boards: [ID!]) {
		boards(ids: $boards) {
			id
			columns {
				id
				title
				settings_str
			}
		}
	}
`

const itemsPageQuery = `
	query ItemsPage($boards: [ID!], $cursor: String) {
		boards(ids: $boards) {
			items_page(limit: 500, cursor: $cursor) {
				items {
					id
					name
				}
				cursor
			}
		}
	}
`

const linkedItemsQuery = `
	query LinkedItems($items: [ID!], $relation: String!, $board: ID!) {
		items(ids: $items) {
			linked_items(link_to_item_column_id: $relation, linked_board_id: $board) {
				id
				name
			}
		}
	}
`

const createItemMutation = `
	mutation CreateItem($board: ID!, $name: String!, $values: JSON!) {
		create_item(board_id: $board, item_name: $name, column_values: $values) {
			id
		}
	}
`

// addFileMutation travels as the "query" part of a multipart upload; the
// $file variable is filled from the file part via the multipart map field.
const addFileMutation = `
	mutation AddFile($file: File!, $item: ID!, $column: String!) {
		add_file_to_column(item_id: $item, column_id: $column, file: $file) {
			id
		}
	}
`
