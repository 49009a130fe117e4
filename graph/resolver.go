package graph

import (
	"context"

	"github.com/graph-gophers/graphql-go"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/Markosdlpz02/Practica5/internal/auth"
	"github.com/Markosdlpz02/Practica5/internal/comment"
	"github.com/Markosdlpz02/Practica5/internal/domain"
	"github.com/Markosdlpz02/Practica5/internal/post"
	"github.com/Markosdlpz02/Practica5/internal/user"
)

// Resolver is the root of every query and mutation. It carries the storage
// dependencies explicitly; there is no ambient database handle.
type Resolver struct {
	UserStore    user.UserStorage
	PostStore    post.PostStorage
	CommentStore comment.CommentStorage
}

type UpdateUserInput struct {
	Name     *string
	Email    *string
	Password *string
}

type UpdatePostInput struct {
	Content *string
}

type UpdateCommentInput struct {
	Text *string
}

// ---- Query ----

func (r *Resolver) Users(ctx context.Context) ([]*UserResolver, error) {
	users, err := r.UserStore.GetAllUsers(ctx)
	if err != nil {
		return nil, err
	}
	return wrapUsers(r, users), nil
}

func (r *Resolver) User(ctx context.Context, args struct{ ID graphql.ID }) (*UserResolver, error) {
	u, err := r.UserStore.GetUserByID(ctx, string(args.ID))
	if err != nil {
		return nil, err
	}
	if u == nil {
		return nil, nil
	}
	return &UserResolver{root: r, user: u}, nil
}

func (r *Resolver) Posts(ctx context.Context) ([]*PostResolver, error) {
	posts, err := r.PostStore.GetAllPosts(ctx)
	if err != nil {
		return nil, err
	}
	return wrapPosts(r, posts), nil
}

func (r *Resolver) Post(ctx context.Context, args struct{ ID graphql.ID }) (*PostResolver, error) {
	p, err := r.PostStore.GetPostByID(ctx, string(args.ID))
	if err != nil {
		return nil, err
	}
	if p == nil {
		return nil, nil
	}
	return &PostResolver{root: r, post: p}, nil
}

func (r *Resolver) Comments(ctx context.Context) ([]*CommentResolver, error) {
	comments, err := r.CommentStore.GetAllComments(ctx)
	if err != nil {
		return nil, err
	}
	return wrapComments(r, comments), nil
}

func (r *Resolver) Comment(ctx context.Context, args struct{ ID graphql.ID }) (*CommentResolver, error) {
	c, err := r.CommentStore.GetCommentByID(ctx, string(args.ID))
	if err != nil {
		return nil, err
	}
	if c == nil {
		return nil, nil
	}
	return &CommentResolver{root: r, comment: c}, nil
}

// ---- User mutations ----

func (r *Resolver) CreateUser(ctx context.Context, args struct {
	Name     string
	Email    string
	Password string
}) (*UserResolver, error) {
	existing, err := r.UserStore.GetUserByEmail(ctx, args.Email)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, domain.ErrEmailRegistered
	}

	hashedPassword, err := auth.HashPassword(args.Password)
	if err != nil {
		return nil, err
	}

	u, err := r.UserStore.CreateUser(ctx, args.Name, args.Email, hashedPassword)
	if err != nil {
		return nil, err
	}
	return &UserResolver{root: r, user: u}, nil
}

// UpdateUser returns the pre-update snapshot of the user. The password is
// re-hashed only when one is supplied.
func (r *Resolver) UpdateUser(ctx context.Context, args struct {
	ID    graphql.ID
	Input UpdateUserInput
}) (*UserResolver, error) {
	if args.Input.Email != nil {
		owner, err := r.UserStore.GetUserByEmail(ctx, *args.Input.Email)
		if err != nil {
			return nil, err
		}
		if owner != nil && owner.ID.Hex() != string(args.ID) {
			return nil, domain.ErrEmailTakenByOther
		}
	}

	var hashedPassword *string
	if args.Input.Password != nil {
		hashed, err := auth.HashPassword(*args.Input.Password)
		if err != nil {
			return nil, err
		}
		hashedPassword = &hashed
	}

	prior, err := r.UserStore.UpdateUser(ctx, string(args.ID), args.Input.Name, args.Input.Email, hashedPassword)
	if err != nil {
		return nil, err
	}
	if prior == nil {
		return nil, nil
	}
	return &UserResolver{root: r, user: prior}, nil
}

func (r *Resolver) DeleteUser(ctx context.Context, args struct{ ID graphql.ID }) (bool, error) {
	return r.UserStore.DeleteUser(ctx, string(args.ID))
}

// ---- Post mutations ----

func (r *Resolver) CreatePost(ctx context.Context, args struct {
	Content  string
	AuthorID graphql.ID
}) (*PostResolver, error) {
	author, err := r.UserStore.GetUserByID(ctx, string(args.AuthorID))
	if err != nil {
		return nil, err
	}
	if author == nil {
		return nil, domain.ErrAuthorNotFound
	}

	p, err := r.PostStore.CreatePost(ctx, args.Content, string(args.AuthorID))
	if err != nil {
		return nil, err
	}
	return &PostResolver{root: r, post: p}, nil
}

func (r *Resolver) UpdatePost(ctx context.Context, args struct {
	ID    graphql.ID
	Input UpdatePostInput
}) (*PostResolver, error) {
	prior, err := r.PostStore.UpdatePost(ctx, string(args.ID), args.Input.Content)
	if err != nil {
		return nil, err
	}
	if prior == nil {
		return nil, nil
	}
	return &PostResolver{root: r, post: prior}, nil
}

func (r *Resolver) DeletePost(ctx context.Context, args struct{ ID graphql.ID }) (bool, error) {
	return r.PostStore.DeletePost(ctx, string(args.ID))
}

func (r *Resolver) AddLikeToPost(ctx context.Context, args struct {
	PostID graphql.ID
	UserID graphql.ID
}) (*PostResolver, error) {
	p, err := r.PostStore.GetPostByID(ctx, string(args.PostID))
	if err != nil {
		return nil, err
	}
	if p == nil {
		return nil, domain.ErrPostNotFound
	}

	likerID, err := primitive.ObjectIDFromHex(string(args.UserID))
	if err != nil {
		return nil, err
	}
	for _, liker := range p.Likes {
		if liker == likerID {
			return nil, domain.ErrAlreadyLiked
		}
	}

	refreshed, err := r.PostStore.AddLike(ctx, string(args.PostID), string(args.UserID))
	if err != nil {
		return nil, err
	}
	return &PostResolver{root: r, post: refreshed}, nil
}

func (r *Resolver) RemoveLikeFromPost(ctx context.Context, args struct {
	PostID graphql.ID
	UserID graphql.ID
}) (*PostResolver, error) {
	p, err := r.PostStore.GetPostByID(ctx, string(args.PostID))
	if err != nil {
		return nil, err
	}
	if p == nil {
		return nil, domain.ErrPostNotFound
	}

	likerID, err := primitive.ObjectIDFromHex(string(args.UserID))
	if err != nil {
		return nil, err
	}
	liked := false
	for _, liker := range p.Likes {
		if liker == likerID {
			liked = true
			break
		}
	}
	if !liked {
		return nil, domain.ErrHasNotLiked
	}

	refreshed, err := r.PostStore.RemoveLike(ctx, string(args.PostID), string(args.UserID))
	if err != nil {
		return nil, err
	}
	return &PostResolver{root: r, post: refreshed}, nil
}

// ---- Comment mutations ----

// CreateComment inserts the comment and then appends its id to the parent
// post. The two writes commit independently; there is no transaction.
func (r *Resolver) CreateComment(ctx context.Context, args struct {
	Text     string
	AuthorID graphql.ID
	PostID   graphql.ID
}) (*CommentResolver, error) {
	author, err := r.UserStore.GetUserByID(ctx, string(args.AuthorID))
	if err != nil {
		return nil, err
	}
	if author == nil {
		return nil, domain.ErrAuthorNotFound
	}

	p, err := r.PostStore.GetPostByID(ctx, string(args.PostID))
	if err != nil {
		return nil, err
	}
	if p == nil {
		return nil, domain.ErrPostNotFound
	}

	c, err := r.CommentStore.CreateComment(ctx, args.Text, string(args.AuthorID), string(args.PostID))
	if err != nil {
		return nil, err
	}

	if err := r.PostStore.AttachComment(ctx, string(args.PostID), c.ID.Hex()); err != nil {
		return nil, err
	}
	return &CommentResolver{root: r, comment: c}, nil
}

func (r *Resolver) UpdateComment(ctx context.Context, args struct {
	ID    graphql.ID
	Input UpdateCommentInput
}) (*CommentResolver, error) {
	prior, err := r.CommentStore.UpdateComment(ctx, string(args.ID), args.Input.Text)
	if err != nil {
		return nil, err
	}
	if prior == nil {
		return nil, nil
	}
	return &CommentResolver{root: r, comment: prior}, nil
}

// DeleteComment removes the comment and, only when the delete removed
// exactly one document, pulls its id from the parent post's comment array.
func (r *Resolver) DeleteComment(ctx context.Context, args struct{ ID graphql.ID }) (bool, error) {
	c, err := r.CommentStore.GetCommentByID(ctx, string(args.ID))
	if err != nil {
		return false, err
	}
	if c == nil {
		return false, domain.ErrCommentNotFound
	}

	deleted, err := r.CommentStore.DeleteComment(ctx, string(args.ID))
	if err != nil {
		return false, err
	}
	if !deleted {
		return false, nil
	}

	if err := r.PostStore.DetachComment(ctx, c.Post.Hex(), string(args.ID)); err != nil {
		return false, err
	}
	return true, nil
}

func hexIDs(ids []primitive.ObjectID) []string {
	hex := make([]string, 0, len(ids))
	for _, id := range ids {
		hex = append(hex, id.Hex())
	}
	return hex
}
