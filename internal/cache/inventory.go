package cache

import (
	"context"
	"fmt"
	"time"
)

const (
	UserKeyPrefix      = "user:%d"
	CaretakerKeyPrefix = "caretaker:%d"
	PLZKeyPrefix       = "plz:%s"
)

const (
	UserTTL      = 5 * time.Minute
	CaretakerTTL = 5 * time.Minute
	PLZTTL       = 24 * time.Hour
)

func UserKey(userID uint) string {
	return fmt.Sprintf(UserKeyPrefix, userID)
}

func CaretakerKey(caretakerID uint) string {
	return fmt.Sprintf(CaretakerKeyPrefix, caretakerID)
}

func PLZKey(plz string) string {
	return fmt.Sprintf(PLZKeyPrefix, plz)
}

func Invalidate(ctx context.Context, key string) {
	if client != nil {
		client.Del(ctx, key)
	}
}

func InvalidateUser(ctx context.Context, userID uint) {
	Invalidate(ctx, UserKey(userID))
}

func InvalidateCaretaker(ctx context.Context, caretakerID uint) {
	Invalidate(ctx, CaretakerKey(caretakerID))
}

func InvalidatePLZ(ctx context.Context, plz string) {
	Invalidate(ctx, PLZKey(plz))
}
