package bluesky

import (
	"context"
	"encoding/json"
	"fmt"
	"net/url"
	"strconv"
	"time"

	"github.com/lastnpcalex/ATProto/domain"
)

// threadDepth is how far below the current post getPostThread descends:
// one level, the direct replies.
const threadDepth = 1

// postService implements app.PostService using the Bluesky API.
type postService struct {
	client *Client
}

// NewPostService creates a PostService backed by Bluesky.
func NewPostService(client *Client) *postService {
	return &postService{client: client}
}

// Fetch retrieves the post at uri and its thread context. The record fetch
// is authoritative for the post's own content; the thread fetch supplies
// parent, root, replies, and hydrated image URLs.
func (s *postService) Fetch(ctx context.Context, uri string) (domain.Post, domain.Thread, error) {
	ref, err := domain.ParseATURI(uri)
	if err != nil {
		return domain.Post{}, domain.Thread{}, err
	}

	rec, err := s.record(ctx, ref)
	if err != nil {
		return domain.Post{}, domain.Thread{}, fmt.Errorf("fetching post: %w", err)
	}

	post := mapRecord(uri, rec)
	post.AuthorDID = ref.Actor

	// The author profile is cosmetic: fall back to the bare DID when the
	// profile cannot be fetched.
	if profile, err := s.profile(ctx, ref.Actor); err == nil {
		post.AuthorHandle = profile.Handle
		post.AuthorDisplayName = profile.DisplayName
	}

	node, err := s.thread(ctx, uri)
	if err != nil {
		return domain.Post{}, domain.Thread{}, fmt.Errorf("fetching thread: %w", err)
	}

	if node.Post != nil {
		if post.Text == "" {
			post.Text = node.Post.Record.Text
		}
		if images := imagesFromView(node.Post.Embed); len(images) > 0 {
			post.Images = images
		}
	}

	return post, mapThread(node), nil
}

func (s *postService) Likes(ctx context.Context, uri string) ([]domain.Like, error) {
	params := url.Values{}
	params.Set("uri", uri)

	data, err := s.client.Get(ctx, "app.bsky.feed.getLikes", params)
	if err != nil {
		return nil, fmt.Errorf("fetching likes: %w", err)
	}

	var resp likesResponse
	if err := json.Unmarshal(data, &resp); err != nil {
		return nil, fmt.Errorf("parsing likes: %w", err)
	}

	likes := make([]domain.Like, 0, len(resp.Likes))
	for _, l := range resp.Likes {
		likes = append(likes, domain.Like{
			Handle:      l.Actor.Handle,
			DisplayName: l.Actor.DisplayName,
			IndexedAt:   parseTime(l.IndexedAt),
		})
	}
	return likes, nil
}

func (s *postService) Quotes(ctx context.Context, uri string) ([]domain.Post, error) {
	params := url.Values{}
	params.Set("uri", uri)

	data, err := s.client.Get(ctx, "app.bsky.feed.getQuotes", params)
	if err != nil {
		return nil, fmt.Errorf("fetching quotes: %w", err)
	}

	var resp quotesResponse
	if err := json.Unmarshal(data, &resp); err != nil {
		return nil, fmt.Errorf("parsing quotes: %w", err)
	}

	posts := make([]domain.Post, 0, len(resp.Posts))
	for _, v := range resp.Posts {
		posts = append(posts, mapPostView(v))
	}
	return posts, nil
}

func (s *postService) record(ctx context.Context, ref domain.PostRef) (getRecordResponse, error) {
	params := url.Values{}
	params.Set("repo", ref.Actor)
	params.Set("collection", domain.PostCollection)
	params.Set("rkey", ref.RKey)

	data, err := s.client.Get(ctx, "com.atproto.repo.getRecord", params)
	if err != nil {
		return getRecordResponse{}, err
	}

	var rec getRecordResponse
	if err := json.Unmarshal(data, &rec); err != nil {
		return getRecordResponse{}, fmt.Errorf("parsing record: %w", err)
	}
	return rec, nil
}

func (s *postService) profile(ctx context.Context, actor string) (profileView, error) {
	params := url.Values{}
	params.Set("actor", actor)

	data, err := s.client.Get(ctx, "app.bsky.actor.getProfile", params)
	if err != nil {
		return profileView{}, err
	}

	var profile profileView
	if err := json.Unmarshal(data, &profile); err != nil {
		return profileView{}, fmt.Errorf("parsing profile: %w", err)
	}
	return profile, nil
}

func (s *postService) thread(ctx context.Context, uri string) (threadNode, error) {
	params := url.Values{}
	params.Set("uri", uri)
	params.Set("depth", strconv.Itoa(threadDepth))

	data, err := s.client.Get(ctx, "app.bsky.feed.getPostThread", params)
	if err != nil {
		return threadNode{}, err
	}

	var resp threadResponse
	if err := json.Unmarshal(data, &resp); err != nil {
		return threadNode{}, fmt.Errorf("parsing thread: %w", err)
	}
	return resp.Thread, nil
}

// mapThread extracts parent, root, and replies from a thread node.
// A blocked or deleted ancestor breaks the upward walk; parent and root
// beyond the break are treated as absent rather than an error.
func mapThread(node threadNode) domain.Thread {
	var t domain.Thread

	if p := viewPost(node.Parent); p != nil {
		parent := mapPostView(*p.Post)
		t.Parent = &parent

		top, broken := p, false
		for top.Parent != nil {
			next := viewPost(top.Parent)
			if next == nil {
				broken = true
				break
			}
			top = next
		}
		if !broken {
			root := mapPostView(*top.Post)
			t.Root = &root
		}
	}

	for _, r := range node.Replies {
		if v := viewPost(&r); v != nil {
			t.Replies = append(t.Replies, mapPostView(*v.Post))
		}
	}
	return t
}

// viewPost returns n when it is a renderable thread view post, nil for
// tombstones (notFound, blocked) and missing nodes.
func viewPost(n *threadNode) *threadNode {
	if n == nil || n.Post == nil {
		return nil
	}
	if n.Type != "" && n.Type != typeThreadViewPost {
		return nil
	}
	return n
}

func mapPostView(v postView) domain.Post {
	createdAt := parseTime(v.Record.CreatedAt)
	if createdAt.IsZero() {
		createdAt = parseTime(v.IndexedAt)
	}
	return domain.Post{
		URI:               v.URI,
		CID:               v.CID,
		AuthorDID:         v.Author.Did,
		AuthorHandle:      v.Author.Handle,
		AuthorDisplayName: v.Author.DisplayName,
		Text:              v.Record.Text,
		CreatedAt:         createdAt,
		Images:            imagesFromView(v.Embed),
	}
}

func mapRecord(uri string, rec getRecordResponse) domain.Post {
	return domain.Post{
		URI:       uri,
		CID:       rec.CID,
		Text:      rec.Value.Text,
		CreatedAt: parseTime(rec.Value.CreatedAt),
		Images:    imagesFromRecord(rec.Value.Embed),
	}
}

func imagesFromView(embed *embedView) []domain.Image {
	if embed == nil {
		return nil
	}
	if embed.Type == typeRecordWithMediaView && embed.Media != nil {
		embed = embed.Media
	}
	if embed.Type != typeImagesView {
		return nil
	}
	images := make([]domain.Image, 0, len(embed.Images))
	for _, img := range embed.Images {
		images = append(images, domain.Image{URL: img.Fullsize, Alt: img.Alt})
	}
	return images
}

// imagesFromRecord extracts record-level image refs. These are content
// links rather than CDN URLs, shown as-is when no hydrated view exists.
func imagesFromRecord(embed *recordEmbed) []domain.Image {
	if embed == nil || len(embed.Images) == 0 {
		return nil
	}
	images := make([]domain.Image, 0, len(embed.Images))
	for _, img := range embed.Images {
		images = append(images, domain.Image{URL: img.Image.Ref.Link, Alt: img.Alt})
	}
	return images
}

func parseTime(s string) time.Time {
	t, _ := time.Parse(time.RFC3339, s)
	return t
}
