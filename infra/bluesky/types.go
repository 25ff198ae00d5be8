package bluesky

// Raw JSON shapes for the subset of the com.atproto and app.bsky lexicons
// this client consumes.

const (
	typeThreadViewPost      = "app.bsky.feed.defs#threadViewPost"
	typeNotFoundPost        = "app.bsky.feed.defs#notFoundPost"
	typeBlockedPost         = "app.bsky.feed.defs#blockedPost"
	typeImagesView          = "app.bsky.embed.images#view"
	typeRecordWithMediaView = "app.bsky.embed.recordWithMedia#view"
)

type resolveHandleResponse struct {
	Did string `json:"did"`
}

type profileView struct {
	Did         string `json:"did"`
	Handle      string `json:"handle"`
	DisplayName string `json:"displayName"`
}

// postRecord is the parsed content of an app.bsky.feed.post record.
type postRecord struct {
	Type      string       `json:"$type"`
	Text      string       `json:"text"`
	CreatedAt string       `json:"createdAt"`
	Reply     *replyRef    `json:"reply,omitempty"`
	Embed     *recordEmbed `json:"embed,omitempty"`
}

// replyRef contains references to the parent and root of a reply chain.
type replyRef struct {
	Root   strongRef `json:"root"`
	Parent strongRef `json:"parent"`
}

// strongRef is a reference to a specific version of a record.
type strongRef struct {
	URI string `json:"uri"`
	CID string `json:"cid"`
}

// recordEmbed carries record-level image blobs. The refs are content
// links, not fetchable URLs; hydrated views are preferred when available.
type recordEmbed struct {
	Type   string        `json:"$type"`
	Images []recordImage `json:"images,omitempty"`
}

type recordImage struct {
	Alt   string `json:"alt"`
	Image struct {
		Ref struct {
			Link string `json:"$link"`
		} `json:"ref"`
	} `json:"image"`
}

// getRecordResponse is the com.atproto.repo.getRecord output.
type getRecordResponse struct {
	URI   string     `json:"uri"`
	CID   string     `json:"cid"`
	Value postRecord `json:"value"`
}

// postView is a hydrated post as returned by app.bsky.feed queries.
type postView struct {
	URI       string      `json:"uri"`
	CID       string      `json:"cid"`
	Author    profileView `json:"author"`
	Record    postRecord  `json:"record"`
	Embed     *embedView  `json:"embed,omitempty"`
	IndexedAt string      `json:"indexedAt"`
}

// embedView carries hydrated media with fetchable URLs.
type embedView struct {
	Type   string      `json:"$type"`
	Images []imageView `json:"images,omitempty"`
	Media  *embedView  `json:"media,omitempty"` // recordWithMedia nesting
}

type imageView struct {
	Thumb    string `json:"thumb"`
	Fullsize string `json:"fullsize"`
	Alt      string `json:"alt"`
}

// threadNode is one node of an app.bsky.feed.getPostThread response.
// The $type discriminates view posts from notFound/blocked tombstones.
type threadNode struct {
	Type     string       `json:"$type"`
	Post     *postView    `json:"post,omitempty"`
	Parent   *threadNode  `json:"parent,omitempty"`
	Replies  []threadNode `json:"replies,omitempty"`
	URI      string       `json:"uri,omitempty"`
	NotFound bool         `json:"notFound,omitempty"`
	Blocked  bool         `json:"blocked,omitempty"`
}

type threadResponse struct {
	Thread threadNode `json:"thread"`
}

type likeView struct {
	Actor     profileView `json:"actor"`
	IndexedAt string      `json:"indexedAt"`
	CreatedAt string      `json:"createdAt"`
}

type likesResponse struct {
	Likes []likeView `json:"likes"`
}

type quotesResponse struct {
	Posts []postView `json:"posts"`
}
