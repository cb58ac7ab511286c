package persistent

import (
	"imersao-completa/internal/entity"
	"imersao-completa/internal/model"
)

func ToPostEntity(m *model.PostModel) *entity.Post {
	if m == nil {
		return nil
	}

	return &entity.Post{
		ID:              m.ID,
		Title:           m.Title,
		Slug:            m.Slug,
		Excerpt:         m.Excerpt,
		Content:         m.Content,
		FeaturedImage:   m.FeaturedImage,
		CategoryID:      m.CategoryID,
		AuthorID:        m.AuthorID,
		Status:          entity.PostStatus(m.Status),
		ReadingTime:     m.ReadingTime,
		ViewsCount:      m.ViewsCount,
		MetaTitle:       m.MetaTitle,
		MetaDescription: m.MetaDescription,
		MetaKeywords:    m.MetaKeywords,
		PublishedAt:     m.PublishedAt,
		CreatedAt:       m.CreatedAt,
		UpdatedAt:       m.UpdatedAt,
		Category:        ToCategoryEntity(m.Category),
	}
}

func ToPostModel(e *entity.Post) *model.PostModel {
	if e == nil {
		return nil
	}

	return &model.PostModel{
		ID:              e.ID,
		Title:           e.Title,
		Slug:            e.Slug,
		Excerpt:         e.Excerpt,
		Content:         e.Content,
		FeaturedImage:   e.FeaturedImage,
		CategoryID:      e.CategoryID,
		AuthorID:        e.AuthorID,
		Status:          string(e.Status),
		ReadingTime:     e.ReadingTime,
		ViewsCount:      e.ViewsCount,
		MetaTitle:       e.MetaTitle,
		MetaDescription: e.MetaDescription,
		MetaKeywords:    e.MetaKeywords,
		PublishedAt:     e.PublishedAt,
		CreatedAt:       e.CreatedAt,
		UpdatedAt:       e.UpdatedAt,
	}
}

func toPostEntities(models []model.PostModel) []*entity.Post {
	posts := make([]*entity.Post, len(models))
	for i := range models {
		posts[i] = ToPostEntity(&models[i])
	}
	return posts
}

func ToCategoryEntity(m *model.CategoryModel) *entity.Category {
	if m == nil {
		return nil
	}

	return &entity.Category{
		ID:          m.ID,
		Name:        m.Name,
		Slug:        m.Slug,
		Description: m.Description,
		Color:       m.Color,
		Icon:        m.Icon,
		CreatedAt:   m.CreatedAt,
		UpdatedAt:   m.UpdatedAt,
	}
}

func ToCategoryModel(e *entity.Category) *model.CategoryModel {
	if e == nil {
		return nil
	}

	return &model.CategoryModel{
		ID:          e.ID,
		Name:        e.Name,
		Slug:        e.Slug,
		Description: e.Description,
		Color:       e.Color,
		Icon:        e.Icon,
		CreatedAt:   e.CreatedAt,
		UpdatedAt:   e.UpdatedAt,
	}
}

func ToTagEntity(m *model.TagModel) entity.Tag {
	return entity.Tag{
		ID:        m.ID,
		Name:      m.Name,
		Slug:      m.Slug,
		CreatedAt: m.CreatedAt,
	}
}

func ToProfileEntity(m *model.ProfileModel) *entity.Profile {
	if m == nil {
		return nil
	}

	return &entity.Profile{
		ID:        m.ID,
		FullName:  m.FullName,
		AvatarURL: m.AvatarURL,
		CreatedAt: m.CreatedAt,
		UpdatedAt: m.UpdatedAt,
	}
}

func ToUserEntity(m *model.UserModel) *entity.User {
	if m == nil {
		return nil
	}

	return &entity.User{
		ID:           m.ID,
		Email:        m.Email,
		PasswordHash: m.PasswordHash,
		CreatedAt:    m.CreatedAt,
		UpdatedAt:    m.UpdatedAt,
	}
}

func ToAdvertisementEntity(m *model.AdvertisementModel) *entity.Advertisement {
	if m == nil {
		return nil
	}

	return &entity.Advertisement{
		ID:               m.ID,
		Name:             m.Name,
		Type:             entity.AdType(m.Type),
		Position:         entity.AdPosition(m.Position),
		AdsenseCode:      m.AdsenseCode,
		BannerImage:      m.BannerImage,
		BannerLink:       m.BannerLink,
		IsActive:         m.IsActive,
		Priority:         m.Priority,
		ClicksCount:      m.ClicksCount,
		ImpressionsCount: m.ImpressionsCount,
		StartDate:        m.StartDate,
		EndDate:          m.EndDate,
		CreatedAt:        m.CreatedAt,
		UpdatedAt:        m.UpdatedAt,
	}
}

func ToAdvertisementModel(e *entity.Advertisement) *model.AdvertisementModel {
	if e == nil {
		return nil
	}

	return &model.AdvertisementModel{
		ID:               e.ID,
		Name:             e.Name,
		Type:             string(e.Type),
		Position:         string(e.Position),
		AdsenseCode:      e.AdsenseCode,
		BannerImage:      e.BannerImage,
		BannerLink:       e.BannerLink,
		IsActive:         e.IsActive,
		Priority:         e.Priority,
		ClicksCount:      e.ClicksCount,
		ImpressionsCount: e.ImpressionsCount,
		StartDate:        e.StartDate,
		EndDate:          e.EndDate,
		CreatedAt:        e.CreatedAt,
		UpdatedAt:        e.UpdatedAt,
	}
}

func ToSubscriberEntity(m *model.NewsletterSubscriberModel) *entity.NewsletterSubscriber {
	if m == nil {
		return nil
	}

	return &entity.NewsletterSubscriber{
		ID:             m.ID,
		Email:          m.Email,
		Name:           m.Name,
		IsActive:       m.IsActive,
		Source:         m.Source,
		SubscribedAt:   m.SubscribedAt,
		UnsubscribedAt: m.UnsubscribedAt,
		CreatedAt:      m.CreatedAt,
	}
}

func ToSubscriberModel(e *entity.NewsletterSubscriber) *model.NewsletterSubscriberModel {
	if e == nil {
		return nil
	}

	return &model.NewsletterSubscriberModel{
		ID:             e.ID,
		Email:          e.Email,
		Name:           e.Name,
		IsActive:       e.IsActive,
		Source:         e.Source,
		SubscribedAt:   e.SubscribedAt,
		UnsubscribedAt: e.UnsubscribedAt,
		CreatedAt:      e.CreatedAt,
	}
}
