/*
   ToneDrive - Roland 12-bit sampler disk reader
   Copyright (c) 2023, Alexander Vollschwitz

   This file is part of ToneDrive.

   ToneDrive is free software: you can redistribute it and/or modify
   it under the terms of the GNU General Public License as published by
   the Free Software Foundation, either version 3 of the License, or
   (at your option) any later version.

   ToneDrive is distributed in the hope that it will be useful,
   but WITHOUT ANY WARRANTY; without even the implied warranty of
   MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE. See the
   GNU General Public License for more details.

   You should have received a copy of the GNU General Public License
   along with ToneDrive. If not, see <http://www.gnu.org/licenses/>.
*/

package control

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/gorilla/mux"
	log "github.com/sirupsen/logrus"

	"github.com/xelalexv/tonedrive/pkg/library"
	"github.com/xelalexv/tonedrive/pkg/sampler"
)

//
const DefaultPort = 8550

//
type APIServer interface {
	Serve() error
	Stop() error
}

//
func NewAPIServer(addr string, lib *library.Library) APIServer {
	return &api{address: addr, library: lib}
}

//
type api struct {
	address string
	library *library.Library
	server  *http.Server
}

//
func (a *api) router() *mux.Router {

	router := mux.NewRouter().StrictSlash(true)

	addRoute(router, "status", "GET", "/status", a.status)
	addRoute(router, "ls", "GET", "/list", a.list)
	addRoute(router, "load", "PUT", "/slot/{slot:[1-8]}", a.load)
	addRoute(router, "unload", "GET", "/slot/{slot:[1-8]}/unload", a.unload)
	addRoute(router, "info", "GET", "/slot/{slot:[1-8]}", a.info)
	addRoute(router, "report", "GET", "/slot/{slot:[1-8]}/report", a.report)
	addRoute(router, "tones", "GET", "/slot/{slot:[1-8]}/tones", a.tones)
	addRoute(router, "patches", "GET", "/slot/{slot:[1-8]}/patches",
		a.patches)
	addRoute(router, "wav", "GET",
		"/slot/{slot:[1-8]}/tone/{tone:[0-9]+}/wav", a.wav)

	return router
}

//
func (a *api) Serve() error {

	addr := a.address
	if len(strings.Split(addr, ":")) < 2 {
		addr = fmt.Sprintf("%s:%d", a.address, DefaultPort)
	}

	log.Infof("ToneDrive API starts listening on %s", addr)
	a.server = &http.Server{Addr: addr, Handler: a.router()}

	err := a.server.ListenAndServe()
	if err != nil && err != http.ErrServerClosed {
		return err
	}
	return nil
}

//
func (a *api) Stop() error {
	if a.server != nil {
		log.Info("API server stopping...")
		err := a.server.Shutdown(context.Background())
		a.server = nil
		return err
	}
	return nil
}

//
func addRoute(r *mux.Router, name, method, pattern string,
	handler http.HandlerFunc) {
	r.Methods(method).
		Path(pattern).
		Name(name).
		Handler(requestLogger(handler, name))
}

//
func requestLogger(inner http.Handler, name string) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {

		log.WithFields(log.Fields{
			"remote": r.RemoteAddr,
			"method": r.Method,
			"path":   r.RequestURI,
		}).Debugf("API BEGIN | %s", name)

		start := time.Now()
		inner.ServeHTTP(w, r)

		log.WithFields(log.Fields{
			"remote":   r.RemoteAddr,
			"method":   r.Method,
			"path":     r.RequestURI,
			"duration": time.Since(start),
		}).Debugf("API END   | %s", name)
	})
}

// getDisk fetches the disk for the slot addressed in the request. When no
// disk can be provided, an error reply has already been sent and the
// returned disk is nil.
func (a *api) getDisk(w http.ResponseWriter, req *http.Request) (
	int, *sampler.Disk) {

	slot := getSlot(w, req)
	if slot == -1 {
		return -1, nil
	}

	d, err := a.library.Get(slot)
	if handleError(err, http.StatusUnprocessableEntity, w) {
		return -1, nil
	}

	if d == nil {
		handleError(fmt.Errorf("no disk in slot %d", slot),
			http.StatusUnprocessableEntity, w)
		return -1, nil
	}

	return slot, d
}

//
func getSlot(w http.ResponseWriter, req *http.Request) int {
	return getRouteInt(w, req, "slot")
}

//
func getTone(w http.ResponseWriter, req *http.Request) int {
	return getRouteInt(w, req, "tone")
}

//
func getRouteInt(w http.ResponseWriter, req *http.Request, name string) int {
	vars := mux.Vars(req)
	val, err := strconv.Atoi(vars[name])
	if handleError(err, http.StatusUnprocessableEntity, w) {
		return -1
	}
	return val
}

//
func isFlagSet(req *http.Request, flag string) bool {
	arg, _ := getArg(req, flag)
	return arg == "true"
}

//
func getArg(req *http.Request, arg string) (string, error) {
	ret := req.URL.Query().Get(arg)
	if ret != "" {
		return url.QueryUnescape(ret)
	}
	return ret, nil
}

//
func setHeaders(h http.Header, json bool) {
	if json {
		h.Set("Content-Type", "application/json; charset=UTF-8")
	} else {
		h.Set("Content-Type", "text/plain; charset=UTF-8")
	}
}

//
func handleError(e error, statusCode int, w http.ResponseWriter) bool {

	if e == nil {
		return false
	}

	log.Errorf("%v", e)

	setHeaders(w.Header(), false)
	w.WriteHeader(statusCode)
	if _, err := w.Write([]byte(fmt.Sprintf("%v\n", e))); err != nil {
		log.Errorf("problem writing error: %v", err)
	}

	return true
}

//
func sendReply(body []byte, statusCode int, w http.ResponseWriter) {
	setHeaders(w.Header(), false)
	w.WriteHeader(statusCode)
	if _, err := fmt.Fprintf(w, "%s\n", body); err != nil {
		log.Errorf("problem sending reply: %v", err)
	}
}

//
func sendStreamReply(r io.Reader, statusCode int, w http.ResponseWriter) {
	setHeaders(w.Header(), false)
	w.WriteHeader(statusCode)
	if _, err := io.Copy(w, r); err != nil {
		log.Errorf("problem sending reply: %v", err)
	}
}

//
func sendJSONReply(obj interface{}, statusCode int, w http.ResponseWriter) {
	setHeaders(w.Header(), true)
	w.WriteHeader(statusCode)
	if err := json.NewEncoder(w).Encode(obj); err != nil {
		log.Errorf("problem writing error: %v", err)
	}
}

//
func wantsJSON(req *http.Request) bool {
	return strings.Contains(req.Header.Get("Accept"), "application/json") ||
		req.Header.Get("Content-Type") == "application/json"
}
