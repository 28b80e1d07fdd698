package sitecms

import (
	"encoding/xml"
	"errors"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/gokler/sitecms/content"
	"github.com/gokler/sitecms/model"
)

type rssXML struct {
	XMLName xml.Name   `xml:"rss"`
	Version string     `xml:"version,attr"`
	Channel rssChannel `xml:"channel"`
}

type rssChannel struct {
	Title         string    `xml:"title"`
	Link          string    `xml:"link"`
	Description   string    `xml:"description"`
	Language      string    `xml:"language"`
	LastBuildDate string    `xml:"lastBuildDate,omitempty"`
	Items         []rssItem `xml:"item"`
}

type rssItem struct {
	Title       string `xml:"title"`
	Link        string `xml:"link"`
	Description string `xml:"description"`
	Category    string `xml:"category,omitempty"`
	PubDate     string `xml:"pubDate"`
	GUID        string `xml:"guid"`
}

const feedSize = 20

func (a *App) handleFeed(c echo.Context) error {
	ctx := c.Request().Context()
	posts, err := a.Content.ListBlogPosts(ctx, content.Anonymous, model.Filter{})
	if err != nil {
		return err
	}
	title := a.Config.Name
	if st, err := a.Content.GetSettings(ctx); err == nil {
		title = st.CompanyName
	} else if !errors.Is(err, content.ErrNotFound) {
		return err
	}
	return a.renderRSS(c, title, firstN(posts, feedSize))
}

func (a *App) renderRSS(c echo.Context, title string, posts []model.BlogPost) error {
	base := a.Config.URL
	items := make([]rssItem, 0, len(posts))
	for _, p := range posts {
		postURL := BuildURL(base, "blog", p.Slug)
		items = append(items, rssItem{
			Title:       p.Title,
			Link:        postURL,
			Description: p.Excerpt,
			Category:    p.Category,
			PubDate:     p.CreatedAt.Format(time.RFC1123Z),
			GUID:        postURL,
		})
	}
	channel := rssChannel{
		Title:       title + " Blog",
		Link:        BuildURL(base, "blog"),
		Description: a.Config.Description,
		Language:    "tr",
		Items:       items,
	}
	if len(posts) > 0 {
		channel.LastBuildDate = posts[0].UpdatedAt.Format(time.RFC1123Z)
	}
	feed := rssXML{Version: "2.0", Channel: channel}
	c.Response().Header().Set(echo.HeaderContentType, "application/rss+xml; charset=utf-8")
	c.Response().WriteHeader(http.StatusOK)
	c.Response().Write([]byte(xml.Header))
	return xml.NewEncoder(c.Response()).Encode(feed)
}
