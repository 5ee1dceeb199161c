package rest

import (
	"github.com/tWoAlex/foodgram-project-react/internal/domain"
	"github.com/tWoAlex/foodgram-project-react/internal/service/relation"
	"github.com/tWoAlex/foodgram-project-react/pkg/pagination"
)

type userResponse struct {
	ID        string `json:"id"`
	Email     string `json:"email"`
	Username  string `json:"username"`
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
}

type authorResponse struct {
	userResponse
	IsSubscribed bool `json:"is_subscribed"`
}

type tagResponse struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Slug  string `json:"slug"`
	Color string `json:"color"`
}

type ingredientResponse struct {
	ID              string `json:"id"`
	Name            string `json:"name"`
	MeasurementUnit string `json:"measurement_unit"`
}

type componentResponse struct {
	ingredientResponse
	Amount int `json:"amount"`
}

type recipeResponse struct {
	ID               string              `json:"id"`
	Author           userResponse        `json:"author"`
	Name             string              `json:"name"`
	Text             string              `json:"text"`
	Image            string              `json:"image"`
	CookingTime      int                 `json:"cooking_time"`
	Tags             []tagResponse       `json:"tags"`
	Ingredients      []componentResponse `json:"ingredients"`
	IsFavorited      bool                `json:"is_favorited"`
	IsInShoppingCart bool                `json:"is_in_shopping_cart"`
}

type recipeShortResponse struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Image       string `json:"image"`
	CookingTime int    `json:"cooking_time"`
}

type subscribedAuthorResponse struct {
	authorResponse
	Recipes      []recipeShortResponse `json:"recipes"`
	RecipesCount int                   `json:"recipes_count"`
}

type metaResponse struct {
	Count   int  `json:"count"`
	Page    int  `json:"page"`
	Limit   int  `json:"limit"`
	HasNext bool `json:"has_next"`
	HasPrev bool `json:"has_prev"`
}

func toUserResponse(u *domain.User) userResponse {
	return userResponse{
		ID:        u.ID.String(),
		Email:     u.Email,
		Username:  u.Username,
		FirstName: u.FirstName,
		LastName:  u.LastName,
	}
}

func toAuthorResponse(a *domain.Author) authorResponse {
	return authorResponse{
		userResponse: toUserResponse(&a.User),
		IsSubscribed: a.IsSubscribed,
	}
}

func toTagResponse(t domain.Tag) tagResponse {
	return tagResponse{
		ID:    t.ID.String(),
		Name:  t.Name,
		Slug:  t.Slug,
		Color: t.Color,
	}
}

func toIngredientResponse(i domain.Ingredient) ingredientResponse {
	return ingredientResponse{
		ID:              i.ID.String(),
		Name:            i.Name,
		MeasurementUnit: i.MeasurementUnit,
	}
}

// imageURL maps the stored relative path to its public media URL.
func imageURL(path string) string {
	if path == "" {
		return ""
	}
	return "/media/" + path
}

func toRecipeResponse(r *domain.AnnotatedRecipe) recipeResponse {
	resp := recipeResponse{
		ID:               r.ID.String(),
		Name:             r.Name,
		Text:             r.Description,
		Image:            imageURL(r.ImagePath),
		CookingTime:      r.CookingTime,
		Tags:             make([]tagResponse, 0, len(r.Tags)),
		Ingredients:      make([]componentResponse, 0, len(r.Components)),
		IsFavorited:      r.IsFavorited,
		IsInShoppingCart: r.IsInShoppingCart,
	}
	if r.Author != nil {
		resp.Author = toUserResponse(r.Author)
	}
	for _, t := range r.Tags {
		resp.Tags = append(resp.Tags, toTagResponse(t))
	}
	for _, c := range r.Components {
		resp.Ingredients = append(resp.Ingredients, componentResponse{
			ingredientResponse: toIngredientResponse(c.Ingredient),
			Amount:             c.Amount,
		})
	}
	return resp
}

func toRecipeShortResponse(r *domain.AnnotatedRecipe) recipeShortResponse {
	return recipeShortResponse{
		ID:          r.ID.String(),
		Name:        r.Name,
		Image:       imageURL(r.ImagePath),
		CookingTime: r.CookingTime,
	}
}

func toSubscribedAuthorResponse(a relation.SubscribedAuthor) subscribedAuthorResponse {
	resp := subscribedAuthorResponse{
		authorResponse: toAuthorResponse(&a.Author),
		Recipes:        make([]recipeShortResponse, 0, len(a.Recipes)),
		RecipesCount:   a.RecipeCount,
	}
	for i := range a.Recipes {
		resp.Recipes = append(resp.Recipes, toRecipeShortResponse(&a.Recipes[i]))
	}
	return resp
}

func toMetaResponse(m pagination.Meta) metaResponse {
	return metaResponse{
		Count:   m.Count,
		Page:    m.Page,
		Limit:   m.Limit,
		HasNext: m.HasNext,
		HasPrev: m.HasPrev,
	}
}
