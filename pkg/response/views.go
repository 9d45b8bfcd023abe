package response

import (
	"time"

	"movie-tinder/internal/model"
)

// 各接口的响应结构体：字段名与既有客户端保持一致

// UserInfo 用户信息
type UserInfo struct {
	ID         uint   `json:"id"`
	Username   string `json:"username"`
	InviteCode string `json:"invite_code"`
	CreatedAt  string `json:"created_at"`
}

// FilterUserInfo 过滤用户信息
func FilterUserInfo(user *model.User) *UserInfo {
	if user == nil {
		return nil
	}

	return &UserInfo{
		ID:         user.ID,
		Username:   user.Username,
		InviteCode: user.InviteCode,
		CreatedAt:  user.CreatedAt.Format(time.RFC3339),
	}
}

// CreateUserResponse 创建用户响应
// access_token 为可选身份凭证（旧客户端忽略该字段）
type CreateUserResponse struct {
	UserInfo
	AccessToken string `json:"access_token,omitempty"`
}

// StreamingServiceInfo 流媒体平台信息
type StreamingServiceInfo struct {
	ID      uint   `json:"id"`
	Name    string `json:"name"`
	LogoURL string `json:"logo_url,omitempty"`
}

// FilterStreamingServices 转换平台列表
func FilterStreamingServices(services []*model.StreamingService) []*StreamingServiceInfo {
	result := make([]*StreamingServiceInfo, 0, len(services))
	for _, s := range services {
		result = append(result, &StreamingServiceInfo{
			ID:      s.ID,
			Name:    s.Name,
			LogoURL: s.LogoURL,
		})
	}
	return result
}

// MovieInfo 影片信息（含可观看平台）
type MovieInfo struct {
	ID                uint                    `json:"id"`
	Title             string                  `json:"title"`
	Genre             string                  `json:"genre"`
	Rating            string                  `json:"rating,omitempty"`
	Description       string                  `json:"description,omitempty"`
	PosterURL         string                  `json:"poster_url,omitempty"`
	ReleaseYear       *int                    `json:"release_year,omitempty"`
	IMDBRating        string                  `json:"imdb_rating,omitempty"`
	StreamingServices []*StreamingServiceInfo `json:"streaming_services"`
}

// FilterMovieInfo 过滤影片信息
func FilterMovieInfo(movie *model.Movie, services []*model.StreamingService) *MovieInfo {
	if movie == nil {
		return nil
	}

	return &MovieInfo{
		ID:                movie.ID,
		Title:             movie.Title,
		Genre:             movie.Genre,
		Rating:            movie.Rating,
		Description:       movie.Description,
		PosterURL:         movie.PosterURL,
		ReleaseYear:       movie.ReleaseYear,
		IMDBRating:        movie.IMDBRating,
		StreamingServices: FilterStreamingServices(services),
	}
}

// FriendRequestInfo 好友请求信息
type FriendRequestInfo struct {
	ID         uint      `json:"id"`
	SenderID   uint      `json:"sender_id"`
	ReceiverID uint      `json:"receiver_id"`
	Status     string    `json:"status"`
	CreatedAt  string    `json:"created_at"`
	Sender     *UserInfo `json:"sender,omitempty"`
	Receiver   *UserInfo `json:"receiver,omitempty"`
}

// FilterFriendRequestInfo 过滤好友请求信息
func FilterFriendRequestInfo(req *model.FriendRequest, sender, receiver *model.User) *FriendRequestInfo {
	if req == nil {
		return nil
	}

	return &FriendRequestInfo{
		ID:         req.ID,
		SenderID:   req.SenderID,
		ReceiverID: req.ReceiverID,
		Status:     req.Status,
		CreatedAt:  req.CreatedAt.Format(time.RFC3339),
		Sender:     FilterUserInfo(sender),
		Receiver:   FilterUserInfo(receiver),
	}
}

// FriendshipInfo 好友关系信息（friend为对方用户）
type FriendshipInfo struct {
	ID        uint      `json:"id"`
	User1ID   uint      `json:"user1_id"`
	User2ID   uint      `json:"user2_id"`
	CreatedAt string    `json:"created_at"`
	Friend    *UserInfo `json:"friend"`
}

// FilterFriendshipInfo 过滤好友关系信息
func FilterFriendshipInfo(f *model.Friendship, friend *model.User) *FriendshipInfo {
	if f == nil {
		return nil
	}

	return &FriendshipInfo{
		ID:        f.ID,
		User1ID:   f.User1ID,
		User2ID:   f.User2ID,
		CreatedAt: f.CreatedAt.Format(time.RFC3339),
		Friend:    FilterUserInfo(friend),
	}
}

// SwipeInfo 滑动记录信息
type SwipeInfo struct {
	ID        uint   `json:"id"`
	UserID    uint   `json:"user_id"`
	MovieID   uint   `json:"movie_id"`
	Direction string `json:"direction"`
	CreatedAt string `json:"created_at"`
}

// FilterSwipeInfo 过滤滑动记录信息
func FilterSwipeInfo(s *model.Swipe) *SwipeInfo {
	if s == nil {
		return nil
	}

	return &SwipeInfo{
		ID:        s.ID,
		UserID:    s.UserID,
		MovieID:   s.MovieID,
		Direction: s.Direction,
		CreatedAt: s.CreatedAt.Format(time.RFC3339),
	}
}

// MatchInfo 匹配信息（movie与friend为展开后的关联数据）
type MatchInfo struct {
	ID            uint       `json:"id"`
	User1ID       uint       `json:"user1_id"`
	User2ID       uint       `json:"user2_id"`
	MovieID       uint       `json:"movie_id"`
	NotifiedUser1 bool       `json:"notified_user1"`
	NotifiedUser2 bool       `json:"notified_user2"`
	CreatedAt     string     `json:"created_at"`
	Movie         *MovieInfo `json:"movie"`
	Friend        *UserInfo  `json:"friend"`
}

// FilterMatchInfo 过滤匹配信息
func FilterMatchInfo(m *model.Match, movie *MovieInfo, friend *model.User) *MatchInfo {
	if m == nil {
		return nil
	}

	return &MatchInfo{
		ID:            m.ID,
		User1ID:       m.User1ID,
		User2ID:       m.User2ID,
		MovieID:       m.MovieID,
		NotifiedUser1: m.NotifiedUser1,
		NotifiedUser2: m.NotifiedUser2,
		CreatedAt:     m.CreatedAt.Format(time.RFC3339),
		Movie:         movie,
		Friend:        FilterUserInfo(friend),
	}
}

// WatchSessionInfo 共同观影会话信息
type WatchSessionInfo struct {
	ID        uint      `json:"id"`
	User1ID   uint      `json:"user1_id"`
	User2ID   uint      `json:"user2_id"`
	CreatedAt string    `json:"created_at"`
	Friend    *UserInfo `json:"friend"`
}

// FilterWatchSessionInfo 过滤观影会话信息
func FilterWatchSessionInfo(ws *model.WatchSession, friend *model.User) *WatchSessionInfo {
	if ws == nil {
		return nil
	}

	return &WatchSessionInfo{
		ID:        ws.ID,
		User1ID:   ws.User1ID,
		User2ID:   ws.User2ID,
		CreatedAt: ws.CreatedAt.Format(time.RFC3339),
		Friend:    FilterUserInfo(friend),
	}
}

// SyncMovieResponse TMDB同步响应
type SyncMovieResponse struct {
	Message string `json:"message"`
	MovieID uint   `json:"movie_id"`
	Title   string `json:"title,omitempty"`
}

// LoadMoreMoviesResponse 热门影片拉取响应
type LoadMoreMoviesResponse struct {
	Added   int    `json:"added"`
	Message string `json:"message"`
}
