package usecase

import "context"

// ImageResolver превращает ссылку на изображение из хранилища в URL, пригодный для витрины.
type ImageResolver interface {
	ResolveImage(ctx context.Context, ref string) (string, error)
}

// EventPublisher публикует события витрины во внешнюю шину.
type EventPublisher interface {
	Publish(ctx context.Context, event *StorefrontEvent) error
}
