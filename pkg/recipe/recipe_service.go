package recipe

import (
	"context"
	"strings"

	"Recipe-Book/domain"
	"Recipe-Book/entities"
	"Recipe-Book/internal/utils/storage"
	"Recipe-Book/pkg/comment"
	"Recipe-Book/pkg/favourite"
	"Recipe-Book/pkg/rating"

	"github.com/gofiber/fiber/v2/log"
	"github.com/google/uuid"
)

const (
	maxPageSize = 100
	imageFolder = "recipes"
)

// reservedSlugs collide with fixed routes under /api/recipes.
var reservedSlugs = map[string]bool{
	"highlights": true,
}

type (
	RecipeService interface {
		ListRecipes(ctx context.Context, viewer domain.Viewer, req domain.RecipeListRequest) (domain.RecipeListResponse, error)
		GetHighlights(ctx context.Context, viewer domain.Viewer) (domain.RecipeHighlightsResponse, error)
		GetRecipeDetail(ctx context.Context, viewer domain.Viewer, slug string) (domain.RecipeDetail, error)
		GetFavouriteRecipes(ctx context.Context, viewer domain.Viewer, page, limit int) (domain.FavouriteListResponse, error)
		CreateRecipe(ctx context.Context, authorID string, req domain.CreateRecipeRequest) (domain.Recipe, error)
		UpdateRecipe(ctx context.Context, userID, slug string, req domain.UpdateRecipeRequest) (domain.Recipe, error)
		DeleteRecipe(ctx context.Context, userID, slug string) error
	}

	recipeService struct {
		recipeRepository RecipeRepository
		ratingService    rating.RatingService
		favouriteService favourite.FavouriteService
		commentService   comment.CommentService
		s3               storage.AwsS3
		pageSize         int
	}
)

func NewRecipeService(
	recipeRepository RecipeRepository,
	ratingService rating.RatingService,
	favouriteService favourite.FavouriteService,
	commentService comment.CommentService,
	s3 storage.AwsS3,
	pageSize int,
) RecipeService {
	if pageSize < 1 {
		pageSize = domain.DefaultPageSize
	}
	return &recipeService{
		recipeRepository: recipeRepository,
		ratingService:    ratingService,
		favouriteService: favouriteService,
		commentService:   commentService,
		s3:               s3,
		pageSize:         pageSize,
	}
}

func (s *recipeService) ListRecipes(ctx context.Context, viewer domain.Viewer, req domain.RecipeListRequest) (domain.RecipeListResponse, error) {
	filter := ParseSearchQuery(req.Query)

	rows, err := s.recipeRepository.GetPublishedRecipes(ctx, filter)
	if err != nil {
		return domain.RecipeListResponse{}, err
	}

	favourites, err := s.favouriteService.FavouriteIDsFor(ctx, viewer)
	if err != nil {
		return domain.RecipeListResponse{}, err
	}

	recipes, err := s.annotate(ctx, viewer, rows, favourites)
	if err != nil {
		return domain.RecipeListResponse{}, err
	}

	SortRecipes(recipes, req.Sort)
	page, pagination := Paginate(recipes, req.Page, s.limit(req.Limit))

	return domain.RecipeListResponse{
		Recipes:        page,
		SearchHeading:  SearchHeading(filter, len(recipes)),
		UserFavourites: idStrings(favourites),
		Pagination:     pagination,
	}, nil
}

func (s *recipeService) GetHighlights(ctx context.Context, viewer domain.Viewer) (domain.RecipeHighlightsResponse, error) {
	rows, err := s.recipeRepository.GetPublishedRecipes(ctx, SearchFilter{})
	if err != nil {
		return domain.RecipeHighlightsResponse{}, err
	}

	favourites, err := s.favouriteService.FavouriteIDsFor(ctx, viewer)
	if err != nil {
		return domain.RecipeHighlightsResponse{}, err
	}

	recipes, err := s.annotate(ctx, viewer, rows, favourites)
	if err != nil {
		return domain.RecipeHighlightsResponse{}, err
	}

	return domain.RecipeHighlightsResponse{
		RecipesByRating: TopN(recipes, domain.SortHighestRating, domain.HighlightSize),
		RecipesByDate:   TopN(recipes, domain.SortNewest, domain.HighlightSize),
		UserFavourites:  idStrings(favourites),
	}, nil
}

func (s *recipeService) GetRecipeDetail(ctx context.Context, viewer domain.Viewer, slug string) (domain.RecipeDetail, error) {
	recipe, err := s.recipeRepository.GetPublishedRecipeBySlug(ctx, slug)
	if err != nil {
		return domain.RecipeDetail{}, err
	}

	var favourites []uuid.UUID
	isFavourite, err := s.favouriteService.IsFavourite(ctx, viewer, recipe.ID.String())
	if err != nil {
		return domain.RecipeDetail{}, err
	}
	if isFavourite {
		favourites = append(favourites, recipe.ID)
	}

	annotated, err := s.annotate(ctx, viewer, []*entities.Recipe{recipe}, favourites)
	if err != nil {
		return domain.RecipeDetail{}, err
	}

	comments, approved, err := s.commentService.ListForRecipe(ctx, recipe.ID)
	if err != nil {
		return domain.RecipeDetail{}, err
	}

	return domain.RecipeDetail{
		Recipe:       annotated[0],
		Content:      recipe.Content,
		Ingredients:  recipe.Ingredients,
		Comments:     comments,
		NoOfComments: approved,
	}, nil
}

func (s *recipeService) GetFavouriteRecipes(ctx context.Context, viewer domain.Viewer, page, limit int) (domain.FavouriteListResponse, error) {
	favourites, err := s.favouriteService.FavouriteIDsFor(ctx, viewer)
	if err != nil {
		return domain.FavouriteListResponse{}, err
	}

	rows, err := s.recipeRepository.GetPublishedRecipesByIDs(ctx, favourites)
	if err != nil {
		return domain.FavouriteListResponse{}, err
	}

	recipes, err := s.annotate(ctx, viewer, rows, favourites)
	if err != nil {
		return domain.FavouriteListResponse{}, err
	}

	pageItems, pagination := Paginate(recipes, page, s.limit(limit))
	return domain.FavouriteListResponse{
		Recipes:    pageItems,
		Pagination: pagination,
	}, nil
}

func (s *recipeService) CreateRecipe(ctx context.Context, authorID string, req domain.CreateRecipeRequest) (domain.Recipe, error) {
	author, err := uuid.Parse(authorID)
	if err != nil {
		return domain.Recipe{}, domain.ErrUnauthenticated
	}

	slug := Slugify(req.Slug)
	if req.Slug == "" {
		slug = Slugify(req.Title)
	}
	if slug == "" {
		return domain.Recipe{}, domain.ErrInvalidSlug
	}
	if reservedSlugs[slug] {
		return domain.Recipe{}, domain.ErrReservedSlug
	}

	category := entities.CategoryNone
	if req.Category != "" {
		c, ok := entities.ParseRecipeCategory(req.Category)
		if !ok {
			return domain.Recipe{}, domain.ErrInvalidCategory
		}
		category = c
	}

	status := entities.StatusDraft
	if req.Status != "" {
		st, ok := entities.ParseRecipeStatus(req.Status)
		if !ok {
			return domain.Recipe{}, domain.ErrInvalidStatus
		}
		status = st
	}

	recipe := entities.Recipe{
		AuthorID:    author,
		Title:       strings.TrimSpace(req.Title),
		Slug:        slug,
		Content:     req.Content,
		Ingredients: req.Ingredients,
		Teaser:      strings.TrimSpace(req.Teaser),
		AltText:     req.AltText,
		Category:    category,
		Status:      status,
	}

	var objectKey string
	if req.Image != nil {
		objectKey, err = s.s3.UploadFile(slug, req.Image, imageFolder, storage.AllowImage...)
		if err != nil {
			return domain.Recipe{}, err
		}
		recipe.FeatureImage = s.s3.GetPublicLinkKey(objectKey)
	}

	if err := s.recipeRepository.CreateRecipe(ctx, &recipe); err != nil {
		if objectKey != "" {
			if delErr := s.s3.DeleteFile(objectKey); delErr != nil {
				log.Warnf("removing orphaned image %s: %v", objectKey, delErr)
			}
		}
		return domain.Recipe{}, err
	}

	return toDomainRecipe(&recipe), nil
}

func (s *recipeService) UpdateRecipe(ctx context.Context, userID, slug string, req domain.UpdateRecipeRequest) (domain.Recipe, error) {
	recipe, err := s.ownedRecipe(ctx, userID, slug)
	if err != nil {
		return domain.Recipe{}, err
	}

	if req.Title != nil {
		recipe.Title = strings.TrimSpace(*req.Title)
	}
	if req.Content != nil {
		recipe.Content = *req.Content
	}
	if req.Ingredients != nil {
		recipe.Ingredients = *req.Ingredients
	}
	if req.Teaser != nil {
		recipe.Teaser = strings.TrimSpace(*req.Teaser)
	}
	if req.AltText != nil {
		recipe.AltText = *req.AltText
	}
	if req.Category != nil {
		c, ok := entities.ParseRecipeCategory(*req.Category)
		if !ok {
			return domain.Recipe{}, domain.ErrInvalidCategory
		}
		recipe.Category = c
	}
	if req.Status != nil {
		st, ok := entities.ParseRecipeStatus(*req.Status)
		if !ok {
			return domain.Recipe{}, domain.ErrInvalidStatus
		}
		recipe.Status = st
	}

	if err := s.recipeRepository.UpdateRecipe(ctx, recipe); err != nil {
		return domain.Recipe{}, err
	}
	return toDomainRecipe(recipe), nil
}

func (s *recipeService) DeleteRecipe(ctx context.Context, userID, slug string) error {
	recipe, err := s.ownedRecipe(ctx, userID, slug)
	if err != nil {
		return err
	}

	if err := s.recipeRepository.DeleteRecipe(ctx, recipe.ID); err != nil {
		return err
	}

	if key := s.s3.GetObjectKeyFromLink(recipe.FeatureImage); key != "" {
		if err := s.s3.DeleteFile(key); err != nil {
			log.Warnf("removing image of deleted recipe %s: %v", recipe.Slug, err)
		}
	}
	return nil
}

// ownedRecipe loads a recipe of any status and checks userID authored it.
func (s *recipeService) ownedRecipe(ctx context.Context, userID, slug string) (*entities.Recipe, error) {
	recipe, err := s.recipeRepository.GetRecipeBySlug(ctx, slug)
	if err != nil {
		return nil, err
	}
	if recipe.AuthorID.String() != userID {
		return nil, domain.ErrUnauthorizedRecipeAccess
	}
	return recipe, nil
}

// annotate attaches rating statistics, the viewer's own score and
// favourite membership to each recipe without persisting anything.
func (s *recipeService) annotate(ctx context.Context, viewer domain.Viewer, rows []*entities.Recipe, favourites []uuid.UUID) ([]domain.Recipe, error) {
	ids := make([]uuid.UUID, 0, len(rows))
	for _, row := range rows {
		ids = append(ids, row.ID)
	}

	stats, err := s.ratingService.StatsFor(ctx, ids)
	if err != nil {
		return nil, err
	}
	scores, err := s.ratingService.ScoresFor(ctx, viewer, ids)
	if err != nil {
		return nil, err
	}

	favouriteSet := make(map[uuid.UUID]struct{}, len(favourites))
	for _, id := range favourites {
		favouriteSet[id] = struct{}{}
	}

	recipes := make([]domain.Recipe, 0, len(rows))
	for _, row := range rows {
		recipe := toDomainRecipe(row)
		if st, ok := stats[row.ID]; ok {
			recipe.AvgRating = st.Average
			recipe.RatingsCount = st.Count
		}
		if score, ok := scores[row.ID]; ok {
			recipe.UserRating = &score
		}
		_, recipe.IsFavourite = favouriteSet[row.ID]
		recipes = append(recipes, recipe)
	}
	return recipes, nil
}

func (s *recipeService) limit(requested int) int {
	switch {
	case requested < 1:
		return s.pageSize
	case requested > maxPageSize:
		return maxPageSize
	default:
		return requested
	}
}

func toDomainRecipe(recipe *entities.Recipe) domain.Recipe {
	res := domain.Recipe{
		ID:           recipe.ID.String(),
		Title:        recipe.Title,
		Slug:         recipe.Slug,
		AuthorID:     recipe.AuthorID.String(),
		Teaser:       recipe.Teaser,
		FeatureImage: recipe.FeatureImage,
		AltText:      recipe.AltText,
		Category:     string(recipe.Category),
		Status:       string(recipe.Status),
		CreatedAt:    recipe.CreatedAt,
		UpdatedAt:    recipe.UpdatedAt,
	}
	if recipe.Author != nil {
		res.Author = recipe.Author.Username
	}
	return res
}

func idStrings(ids []uuid.UUID) []string {
	out := make([]string, 0, len(ids))
	for _, id := range ids {
		out = append(out, id.String())
	}
	return out
}
