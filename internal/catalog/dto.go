package catalog

type MenuItemDTO struct {
	ID    int64  `json:"id"`
	Name  string `json:"name"`
	Price int    `json:"price"`
	Stock int    `json:"stock"`
}

type MenuResponse struct {
	MenuItems []MenuItemDTO `json:"menu_items"`
}
