// Package fakeapi is an in-memory catalog REST API for tests. It speaks the
// same {success, data, message} envelope as the real backend and stores
// records as plain JSON documents.
package fakeapi

import (
	"fmt"
	"net/http"
	"net/http/httptest"
	"slices"
	"strconv"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// Doc is a stored record
type Doc = map[string]any

// Response is the envelope written by every handler
type Response struct {
	Success bool   `json:"success"`
	Data    any    `json:"data,omitempty"`
	Message string `json:"message,omitempty"`
}

type failure struct {
	status  int
	message string
}

// bareCollections answer list requests with a bare array instead of a page
var bareCollections = map[string]bool{"product-kinds": true}

// statusActions maps an action route to the status it sets
var statusActions = map[string]string{
	"approve": "approved",
	"order":   "ordered",
	"receive": "received",
	"cancel":  "cancelled",
	"expire":  "expired",
	"use":     "used",
}

// API is the fake backend
type API struct {
	mu       sync.Mutex
	docs     map[string][]Doc
	failures map[string]failure
	calls    map[string]int
	router   *gin.Engine
}

// New creates an empty fake API
func New() *API {
	gin.SetMode(gin.TestMode)
	a := &API{
		docs:     make(map[string][]Doc),
		failures: make(map[string]failure),
		calls:    make(map[string]int),
	}

	r := gin.New()
	r.Use(gin.Recovery(), a.count, a.inject)
	api := r.Group("/api")
	api.GET("/:collection", a.list)
	api.POST("/:collection", a.create)
	api.GET("/:collection/:id", a.get)
	api.PUT("/:collection/:id", a.update)
	api.DELETE("/:collection/:id", a.remove)
	api.GET("/:collection/:id/:arg", a.lookup)
	api.PUT("/:collection/:id/:arg", a.action)
	api.POST("/:collection/:id/:arg", a.action)
	api.GET("/:collection/:id/:arg/:action", a.keyedAction)
	api.PUT("/:collection/:id/:arg/:action", a.keyedAction)
	a.router = r
	return a
}

// Start serves the API until the test ends and returns its base URL
// (including the /api prefix)
func (a *API) Start(t testing.TB) string {
	t.Helper()
	srv := httptest.NewServer(a.router)
	t.Cleanup(srv.Close)
	return srv.URL + "/api"
}

// Handler exposes the router
func (a *API) Handler() http.Handler { return a.router }

// Seed stores docs in collection, assigning ids where missing
func (a *API) Seed(collection string, docs ...Doc) {
	a.mu.Lock()
	defer a.mu.Unlock()
	for _, d := range docs {
		a.docs[collection] = append(a.docs[collection], a.prepare(d))
	}
}

// Docs returns a copy of a collection
func (a *API) Docs(collection string) []Doc {
	a.mu.Lock()
	defer a.mu.Unlock()
	out := make([]Doc, len(a.docs[collection]))
	for i, d := range a.docs[collection] {
		out[i] = copyDoc(d)
	}
	return out
}

// Fail makes the next request matching method and collection fail
func (a *API) Fail(method, collection string, status int, message string) {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.failures[method+" "+collection] = failure{status: status, message: message}
}

// Calls counts requests by method and collection
func (a *API) Calls(method, collection string) int {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.calls[method+" "+collection]
}

func (a *API) count(c *gin.Context) {
	a.mu.Lock()
	a.calls[c.Request.Method+" "+c.Param("collection")]++
	a.mu.Unlock()
	c.Next()
}

func (a *API) inject(c *gin.Context) {
	key := c.Request.Method + " " + c.Param("collection")
	a.mu.Lock()
	f, ok := a.failures[key]
	delete(a.failures, key)
	a.mu.Unlock()

	if ok {
		c.AbortWithStatusJSON(f.status, Response{Success: false, Message: f.message})
		return
	}
	c.Next()
}

func (a *API) prepare(d Doc) Doc {
	d = copyDoc(d)
	if id, _ := d["_id"].(string); id == "" {
		d["_id"] = uuid.NewString()[:12]
	}
	now := time.Now().UTC().Format(time.RFC3339)
	if _, ok := d["createdAt"]; !ok {
		d["createdAt"] = now
	}
	d["updatedAt"] = now
	return d
}

func copyDoc(d Doc) Doc {
	out := make(Doc, len(d))
	for k, v := range d {
		out[k] = v
	}
	return out
}

func ok(c *gin.Context, status int, data any) {
	c.JSON(status, Response{Success: true, Data: data})
}

func notFound(c *gin.Context, collection string) {
	c.JSON(http.StatusNotFound, Response{Success: false, Message: fmt.Sprintf("%s record not found", collection)})
}

func (a *API) list(c *gin.Context) {
	collection := c.Param("collection")
	page := max(queryInt(c, "page", 1), 1)
	limit := max(queryInt(c, "limit", 20), 1)

	a.mu.Lock()
	var matched []Doc
	for _, d := range a.docs[collection] {
		if matches(d, c.Request.URL.Query()) {
			matched = append(matched, copyDoc(d))
		}
	}
	a.mu.Unlock()

	if bareCollections[collection] {
		ok(c, http.StatusOK, orEmpty(matched))
		return
	}

	total := len(matched)
	start := min((page-1)*limit, total)
	end := min(start+limit, total)
	ok(c, http.StatusOK, gin.H{
		"data":       orEmpty(matched[start:end]),
		"page":       page,
		"limit":      limit,
		"total":      total,
		"totalPages": max((total+limit-1)/limit, 1),
	})
}

func orEmpty(docs []Doc) []Doc {
	if docs == nil {
		return []Doc{}
	}
	return docs
}

func queryInt(c *gin.Context, key string, def int) int {
	n, err := strconv.Atoi(c.Query(key))
	if err != nil {
		return def
	}
	return n
}

// matches applies every query parameter except paging as an equality filter
func matches(d Doc, query map[string][]string) bool {
	for k, vs := range query {
		if k == "page" || k == "limit" || len(vs) == 0 || vs[0] == "" {
			continue
		}
		if k == "q" {
			if !containsTerm(d, vs[0]) {
				return false
			}
			continue
		}
		if fmt.Sprint(d[k]) != vs[0] {
			return false
		}
	}
	return true
}

func (a *API) get(c *gin.Context) {
	collection, id := c.Param("collection"), c.Param("id")
	switch id {
	case "search":
		a.search(c)
		return
	case "stats", "summary":
		a.stats(c)
		return
	case "active":
		a.filtered(c, func(d Doc) bool { return d["isActive"] == true })
		return
	}

	a.mu.Lock()
	defer a.mu.Unlock()
	if d, _ := a.find(collection, "_id", id); d != nil {
		ok(c, http.StatusOK, copyDoc(d))
		return
	}
	notFound(c, collection)
}

func (a *API) search(c *gin.Context) {
	term := c.Query("q")
	a.filtered(c, func(d Doc) bool { return containsTerm(d, term) })
}

// containsTerm matches term case-insensitively against the usual name fields
func containsTerm(d Doc, term string) bool {
	term = strings.ToLower(term)
	for _, key := range []string{"name", "code", "key", "productId", "isbn", "schoolName"} {
		if s, _ := d[key].(string); s != "" && strings.Contains(strings.ToLower(s), term) {
			return true
		}
	}
	return false
}

func (a *API) filtered(c *gin.Context, keep func(Doc) bool) {
	collection := c.Param("collection")
	a.mu.Lock()
	out := []Doc{}
	for _, d := range a.docs[collection] {
		if keep(d) {
			out = append(out, copyDoc(d))
		}
	}
	a.mu.Unlock()
	ok(c, http.StatusOK, out)
}

func (a *API) stats(c *gin.Context) {
	collection := c.Param("collection")
	a.mu.Lock()
	defer a.mu.Unlock()
	active := 0
	for _, d := range a.docs[collection] {
		if d["isActive"] == true {
			active++
		}
	}
	total := len(a.docs[collection])
	ok(c, http.StatusOK, gin.H{"total": total, "active": active, "inactive": total - active})
}

// find must be called with mu held
func (a *API) find(collection, key, value string) (Doc, int) {
	for i, d := range a.docs[collection] {
		if fmt.Sprint(d[key]) == value {
			return d, i
		}
	}
	return nil, -1
}

func (a *API) create(c *gin.Context) {
	collection := c.Param("collection")
	var body Doc
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, Response{Success: false, Message: "Invalid request body"})
		return
	}

	a.mu.Lock()
	if code, _ := body["code"].(string); code != "" {
		if d, _ := a.find(collection, "code", code); d != nil {
			a.mu.Unlock()
			c.JSON(http.StatusConflict, Response{Success: false, Message: fmt.Sprintf("Code %s already exists", code)})
			return
		}
	}
	d := a.prepare(body)
	a.docs[collection] = append(a.docs[collection], d)
	a.mu.Unlock()

	if collection == "product-kinds" {
		ok(c, http.StatusCreated, gin.H{"kind": d})
		return
	}
	ok(c, http.StatusCreated, d)
}

func (a *API) update(c *gin.Context) {
	collection, id := c.Param("collection"), c.Param("id")
	var body Doc
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, Response{Success: false, Message: "Invalid request body"})
		return
	}

	a.mu.Lock()
	d, i := a.find(collection, "_id", id)
	if d == nil {
		a.mu.Unlock()
		notFound(c, collection)
		return
	}
	body["_id"] = id
	body["createdAt"] = d["createdAt"]
	updated := a.prepare(body)
	a.docs[collection][i] = updated
	a.mu.Unlock()

	if collection == "product-kinds" {
		ok(c, http.StatusOK, gin.H{"kind": updated})
		return
	}
	ok(c, http.StatusOK, updated)
}

func (a *API) remove(c *gin.Context) {
	collection, id := c.Param("collection"), c.Param("id")
	a.mu.Lock()
	defer a.mu.Unlock()
	_, i := a.find(collection, "_id", id)
	if i < 0 {
		notFound(c, collection)
		return
	}
	a.docs[collection] = slices.Delete(a.docs[collection], i, i+1)
	c.JSON(http.StatusOK, Response{Success: true, Message: "Deleted"})
}

// lookup serves GET /:collection/<field>/<value> routes such as /slug/x,
// /code/x and /status/x
func (a *API) lookup(c *gin.Context) {
	collection, field, value := c.Param("collection"), c.Param("id"), c.Param("arg")
	switch field {
	case "slug", "code", "isbn", "product":
		key := field
		if field == "product" {
			key = "productId"
		}
		a.mu.Lock()
		defer a.mu.Unlock()
		if d, _ := a.find(collection, key, value); d != nil {
			ok(c, http.StatusOK, copyDoc(d))
			return
		}
		notFound(c, collection)
	default:
		a.filtered(c, func(d Doc) bool { return fmt.Sprint(d[field]) == value })
	}
}

// action serves PUT/POST /:collection/:id/<action>
func (a *API) action(c *gin.Context) {
	collection, id, act := c.Param("collection"), c.Param("id"), c.Param("arg")

	a.mu.Lock()
	defer a.mu.Unlock()
	d, i := a.find(collection, "_id", id)
	if d == nil {
		notFound(c, collection)
		return
	}
	d = copyDoc(d)
	if status, known := statusActions[act]; known {
		d["status"] = status
	}
	d["updatedAt"] = time.Now().UTC().Format(time.RFC3339)
	a.docs[collection][i] = d
	ok(c, http.StatusOK, d)
}

// keyedAction serves /:collection/<field>/<value>/<action>, e.g.
// PUT /gift-cards/code/GC-1/expire. GET validate reports whether the record
// exists and is active.
func (a *API) keyedAction(c *gin.Context) {
	collection, field, value, act := c.Param("collection"), c.Param("id"), c.Param("arg"), c.Param("action")

	a.mu.Lock()
	defer a.mu.Unlock()
	d, i := a.find(collection, field, value)
	if d == nil {
		notFound(c, collection)
		return
	}
	if c.Request.Method == http.MethodGet {
		valid := d["status"] == nil || d["status"] == "active"
		ok(c, http.StatusOK, gin.H{"valid": valid, "balance": d["currentBalance"]})
		return
	}

	d = copyDoc(d)
	if status, known := statusActions[act]; known {
		d["status"] = status
	}
	d["updatedAt"] = time.Now().UTC().Format(time.RFC3339)
	a.docs[collection][i] = d
	ok(c, http.StatusOK, d)
}
