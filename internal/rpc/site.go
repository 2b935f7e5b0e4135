package rpc

import (
	"context"
	"errors"
	"net/http"

	"github.com/daniilsolovey/hotel-portal/internal/i18n"
	"github.com/daniilsolovey/hotel-portal/internal/portal"

	"github.com/vmkteam/zenrpc/v2"
)

//go:generate zenrpc

var (
	ErrRoomNotFound = zenrpc.NewStringError(http.StatusNotFound, "room not found")
	ErrPostNotFound = zenrpc.NewStringError(http.StatusNotFound, "blog post not found")
)

// SiteService serves public site content resolved for a single locale.
type SiteService struct {
	zenrpc.Service
	manager *portal.Manager
}

func NewSiteService(manager *portal.Manager) *SiteService {
	return &SiteService{manager: manager}
}

// Rooms returns active rooms in display order.
//
//zenrpc:locale locale code, tr when omitted
//zenrpc:return rooms resolved for locale
//zenrpc:500 internal server error
func (s *SiteService) Rooms(ctx context.Context, locale *string) ([]Room, error) {
	l := normalize(locale)

	rooms, err := s.manager.Rooms(ctx, false)
	if err != nil {
		return nil, err
	}

	return NewRooms(rooms, l), nil
}

// Room returns a single active room.
//
//zenrpc:id room ID
//zenrpc:locale locale code, tr when omitted
//zenrpc:return room resolved for locale
//zenrpc:404 room not found
//zenrpc:500 internal server error
func (s *SiteService) Room(ctx context.Context, id string, locale *string) (*Room, error) {
	room, err := s.manager.RoomByID(ctx, id)
	if portal.IsNotFound(err) || (err == nil && !room.Active) {
		return nil, ErrRoomNotFound
	} else if err != nil {
		return nil, err
	}

	r := NewRoom(*room, normalize(locale))
	return &r, nil
}

// BlogPosts returns active posts, newest first.
//
//zenrpc:locale locale code, tr when omitted
//zenrpc:return blog posts resolved for locale
//zenrpc:500 internal server error
func (s *SiteService) BlogPosts(ctx context.Context, locale *string) ([]BlogPost, error) {
	posts, err := s.manager.BlogPosts(ctx, false)
	if err != nil {
		return nil, err
	}

	return NewBlogPosts(posts, normalize(locale)), nil
}

// BlogPost finds an active post by its slug in any locale.
//
//zenrpc:slug slug in any locale
//zenrpc:locale locale code, tr when omitted
//zenrpc:return blog post resolved for locale with slugs of every locale
//zenrpc:400 slug is required
//zenrpc:404 blog post not found
//zenrpc:500 internal server error
func (s *SiteService) BlogPost(ctx context.Context, slug string, locale *string) (*BlogPost, error) {
	post, err := s.manager.BlogPostBySlug(ctx, slug)

	var verr *portal.ValidationError
	switch {
	case errors.As(err, &verr):
		return nil, zenrpc.NewStringError(http.StatusBadRequest, verr.Message)
	case portal.IsNotFound(err), err == nil && !post.Active:
		return nil, ErrPostNotFound
	case err != nil:
		return nil, err
	}

	p := NewBlogPost(*post, normalize(locale))
	return &p, nil
}

// Settings returns logo, banner, contact and social links.
//
//zenrpc:locale locale code, tr when omitted
//zenrpc:return site info resolved for locale
//zenrpc:500 internal server error
func (s *SiteService) Settings(ctx context.Context, locale *string) (*SiteInfo, error) {
	l := normalize(locale)

	info, err := s.manager.SiteInfo(ctx)
	if err != nil {
		return nil, err
	}

	si := NewSiteInfo(*info, l)
	return &si, nil
}

// Messages returns the flat UI message catalog.
//
//zenrpc:locale locale code, tr when omitted
//zenrpc:return map of dotted keys to messages, default locale fills the gaps
//zenrpc:500 internal server error
func (s *SiteService) Messages(ctx context.Context, locale *string) (map[string]string, error) {
	return s.manager.Messages(ctx, normalize(locale))
}

// Translate returns a single message, or the key itself when it is unknown.
//
//zenrpc:key dotted message key
//zenrpc:locale locale code, tr when omitted
//zenrpc:return message
//zenrpc:500 internal server error
func (s *SiteService) Translate(ctx context.Context, key string, locale *string) (string, error) {
	return s.manager.Translate(ctx, key, normalize(locale))
}

func normalize(locale *string) string {
	if locale == nil {
		return i18n.DefaultLocale
	}

	return i18n.Normalize(*locale)
}
