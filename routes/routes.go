package routes

import (
	"net/http"

	"everbloom/auth"
	"everbloom/cart"
	"everbloom/catalog"
	"everbloom/live"
	"everbloom/middleware"
	"everbloom/orders"
	"everbloom/pay"
	"everbloom/prefs"
	"everbloom/profile"
	"everbloom/ratelim"
	"everbloom/search"
	"everbloom/submissions"
	"everbloom/wishlist"

	"github.com/julienschmidt/httprouter"
)

func AddStaticRoutes(router *httprouter.Router) {
	router.ServeFiles("/images/*filepath", http.Dir("static/images"))
	router.ServeFiles("/userpics/*filepath", http.Dir("static/userpics"))
}

func AddAuthRoutes(router *httprouter.Router) {
	router.POST("/api/auth/register", ratelim.RateLimit(auth.Register))
	router.POST("/api/auth/login", ratelim.RateLimit(auth.Login))
	router.POST("/api/auth/logout", middleware.Authenticate(auth.LogoutUser))
	router.POST("/api/auth/token/refresh", ratelim.RateLimit(auth.RefreshToken))
}

func AddCatalogRoutes(router *httprouter.Router) {
	router.GET("/api/products", catalog.GetProducts)
	router.GET("/api/products/:productid", catalog.GetProduct)
	router.GET("/api/products/:productid/related", catalog.GetRelatedProducts)
	router.GET("/api/search/suggest", search.SuggestHandler)
}

// Cart and wishlist work for both guests and signed-in users; OptionalAuth
// attaches whichever identity the request carries.
func AddCartRoutes(router *httprouter.Router) {
	router.POST("/api/session/guest", cart.NewGuestSession)
	router.GET("/api/cart", middleware.OptionalAuth(cart.GetCart))
	router.POST("/api/cart", middleware.OptionalAuth(cart.AddToCart))
	router.PUT("/api/cart/:itemid", middleware.OptionalAuth(cart.UpdateQuantity))
	router.DELETE("/api/cart/:itemid", middleware.OptionalAuth(cart.RemoveFromCart))
	router.DELETE("/api/cart", middleware.OptionalAuth(cart.ClearCart))
	router.POST("/api/coupons/validate", middleware.OptionalAuth(cart.ValidateCouponHandler))
}

func AddWishlistRoutes(router *httprouter.Router) {
	router.GET("/api/wishlist", middleware.OptionalAuth(wishlist.GetWishlist))
	router.POST("/api/wishlist", middleware.OptionalAuth(wishlist.AddToWishlist))
	router.DELETE("/api/wishlist/:itemid", middleware.OptionalAuth(wishlist.RemoveFromWishlist))
	router.DELETE("/api/wishlist", middleware.OptionalAuth(wishlist.ClearWishlist))
}

func AddOrderRoutes(router *httprouter.Router) {
	router.POST("/api/checkout", ratelim.RateLimit(middleware.Authenticate(pay.Idempotent(orders.PlaceOrder))))
	router.GET("/api/orders", middleware.Authenticate(orders.ListOrders))
	router.GET("/api/orders/:orderid", middleware.Authenticate(orders.GetOrder))
	router.GET("/api/orders/:orderid/timeline", middleware.Authenticate(orders.GetOrderTimeline))
	router.GET("/api/orders/:orderid/upiqr", middleware.Authenticate(orders.GetUPIQR))
	router.GET("/api/orders/:orderid/invoice", middleware.Authenticate(orders.GetInvoice))
	router.POST("/api/orders/:orderid/cancel", middleware.Authenticate(orders.CancelOrder))
	router.PATCH("/api/orders/:orderid/status", middleware.Authenticate(orders.UpdateOrderStatus))
}

func AddProfileRoutes(router *httprouter.Router) {
	router.GET("/api/profile", middleware.Authenticate(profile.GetProfile))
	router.PUT("/api/profile", middleware.Authenticate(profile.EditProfile))
	router.PUT("/api/profile/picture", middleware.Authenticate(profile.EditProfilePic))
}

func AddPrefsRoutes(router *httprouter.Router) {
	router.GET("/api/prefs/view", middleware.Authenticate(prefs.GetViewPrefs))
	router.PUT("/api/prefs/view", middleware.Authenticate(prefs.UpdateViewPrefs))
	router.GET("/api/prefs/dismissals", middleware.OptionalAuth(prefs.GetDismissals))
	router.POST("/api/prefs/dismissals/:name", middleware.OptionalAuth(prefs.Dismiss))
}

func AddSubmissionRoutes(router *httprouter.Router) {
	router.POST("/api/contact", ratelim.RateLimit(submissions.SubmitContact))
	router.POST("/api/custom-orders", ratelim.RateLimit(middleware.OptionalAuth(submissions.SubmitCustomOrder)))
}

func AddLiveRoutes(router *httprouter.Router, hub *live.Hub) {
	router.GET("/ws/updates", middleware.Authenticate(live.UpdatesHandler(hub)))
}
