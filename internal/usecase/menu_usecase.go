package usecase

import (
	"context"
	"net/http"

	"urban/internal/domain/model"
	repo "urban/internal/repository"
)

// MenuUsecase serves the public catalog: item listings with category
// tree filtering, item detail with related items, and the category
// tree itself.
type MenuUsecase struct {
	menuItems  repo.MenuItemRepository
	categories repo.CategoryRepository
}

func NewMenuUsecase(menuItems repo.MenuItemRepository, categories repo.CategoryRepository) *MenuUsecase {
	return &MenuUsecase{menuItems: menuItems, categories: categories}
}

type MenuListInput struct {
	Page         int
	Limit        int
	Search       string
	CategorySlug string
	MinPrice     *int64
	MaxPrice     *int64
	Sort         string
}

type MenuListOutput struct {
	Items []model.MenuItem `json:"items"`
	Total int64            `json:"total"`
	Page  int              `json:"page"`
	Limit int              `json:"limit"`
}

type MenuDetailOutput struct {
	Item    model.MenuItem   `json:"item"`
	Related []model.MenuItem `json:"related"`
}

type CategoryNode struct {
	ID       int64          `json:"id"`
	Name     string         `json:"name"`
	Slug     string         `json:"slug"`
	Children []CategoryNode `json:"children"`
}

func (u *MenuUsecase) ListMenu(ctx context.Context, in MenuListInput) (MenuListOutput, error) {
	if in.Page <= 0 {
		in.Page = 1
	}
	if in.Limit <= 0 || in.Limit > 100 {
		in.Limit = 20
	}

	q := repo.MenuListQuery{
		Page:     in.Page,
		Limit:    in.Limit,
		Search:   in.Search,
		MinPrice: in.MinPrice,
		MaxPrice: in.MaxPrice,
		Sort:     in.Sort,
	}

	// filtering by a category includes all of its descendants
	if in.CategorySlug != "" {
		selected, err := u.categories.FindBySlug(ctx, in.CategorySlug)
		if err == repo.ErrNotFound {
			return MenuListOutput{}, NewHTTPError(http.StatusNotFound, "category not found")
		}
		if err != nil {
			return MenuListOutput{}, NewHTTPError(http.StatusInternalServerError, "db error")
		}

		all, err := u.categories.ListAll(ctx)
		if err != nil {
			return MenuListOutput{}, NewHTTPError(http.StatusInternalServerError, "db error")
		}
		q.CategoryIDs = descendantIDs(all, selected.ID)
	}

	items, total, err := u.menuItems.ListAvailable(ctx, q)
	if err != nil {
		return MenuListOutput{}, NewHTTPError(http.StatusInternalServerError, "db error")
	}

	return MenuListOutput{Items: items, Total: total, Page: in.Page, Limit: in.Limit}, nil
}

func (u *MenuUsecase) GetMenuItem(ctx context.Context, id int64) (MenuDetailOutput, error) {
	if id <= 0 {
		return MenuDetailOutput{}, NewHTTPError(http.StatusBadRequest, "invalid id")
	}

	item, err := u.menuItems.FindByID(ctx, id)
	if err == repo.ErrNotFound {
		return MenuDetailOutput{}, NewHTTPError(http.StatusNotFound, "not found")
	}
	if err != nil {
		return MenuDetailOutput{}, NewHTTPError(http.StatusInternalServerError, "db error")
	}

	related := []model.MenuItem{}
	if item.CategoryID != nil {
		related, err = u.menuItems.ListRelated(ctx, *item.CategoryID, item.ID, 4)
		if err != nil {
			return MenuDetailOutput{}, NewHTTPError(http.StatusInternalServerError, "db error")
		}
	}

	return MenuDetailOutput{Item: item, Related: related}, nil
}

func (u *MenuUsecase) ListCategories(ctx context.Context) ([]CategoryNode, error) {
	all, err := u.categories.ListAll(ctx)
	if err != nil {
		return []CategoryNode{}, NewHTTPError(http.StatusInternalServerError, "db error")
	}
	return buildCategoryTree(all), nil
}

// descendantIDs collects id plus every category underneath it.
// The tree is small enough to walk in memory.
func descendantIDs(all []model.Category, id int64) []int64 {
	children := map[int64][]int64{}
	for _, c := range all {
		if c.ParentID != nil {
			children[*c.ParentID] = append(children[*c.ParentID], c.ID)
		}
	}

	ids := []int64{}
	stack := []int64{id}
	for len(stack) > 0 {
		cur := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		ids = append(ids, cur)
		stack = append(stack, children[cur]...)
	}
	return ids
}

func buildCategoryTree(all []model.Category) []CategoryNode {
	byParent := map[int64][]model.Category{}
	var roots []model.Category
	for _, c := range all {
		if c.ParentID == nil {
			roots = append(roots, c)
		} else {
			byParent[*c.ParentID] = append(byParent[*c.ParentID], c)
		}
	}

	var build func(c model.Category) CategoryNode
	build = func(c model.Category) CategoryNode {
		node := CategoryNode{ID: c.ID, Name: c.Name, Slug: c.Slug, Children: []CategoryNode{}}
		for _, child := range byParent[c.ID] {
			node.Children = append(node.Children, build(child))
		}
		return node
	}

	nodes := make([]CategoryNode, 0, len(roots))
	for _, r := range roots {
		nodes = append(nodes, build(r))
	}
	return nodes
}
