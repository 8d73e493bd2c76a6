package httpadapter

import (
	"archive/zip"
	"bytes"
	"context"
	"fmt"
	"net"
	"strings"

	"scanhelper/internal/api"
	"scanhelper/internal/domain"
)

// GetDownloadSessionName sends a storage session as a zip of its text files,
// or the file itself when the session holds only one.
func (s *Server) GetDownloadSessionName(ctx context.Context, req api.GetDownloadSessionNameRequestObject) (api.GetDownloadSessionNameResponseObject, error) {
	name := req.Name
	if !domain.ValidSessionName(name) {
		return nil, invalid("invalid session name")
	}
	files, err := s.store.SessionFiles(ctx, name)
	if err != nil {
		return nil, err
	}
	if len(files) == 0 {
		return nil, notFound("no files in " + name)
	}

	if len(files) == 1 {
		return api.GetDownloadSessionName200TextResponse{
			Body:    strings.Join(files[0].Lines, "\n"),
			Headers: api.GetDownloadSessionName200ResponseHeaders{ContentDisposition: attachment(files[0].Name)},
		}, nil
	}

	var buf bytes.Buffer
	zw := zip.NewWriter(&buf)
	for _, f := range files {
		fw, err := zw.Create(f.Name)
		if err != nil {
			return nil, fmt.Errorf("zip %s/%s: %w", name, f.Name, err)
		}
		if _, err := fw.Write([]byte(strings.Join(f.Lines, "\n"))); err != nil {
			return nil, fmt.Errorf("zip %s/%s: %w", name, f.Name, err)
		}
	}
	if err := zw.Close(); err != nil {
		return nil, fmt.Errorf("zip %s: %w", name, err)
	}
	return api.GetDownloadSessionName200ApplicationzipResponse{
		Body:          &buf,
		ContentLength: int64(buf.Len()),
		Headers:       api.GetDownloadSessionName200ResponseHeaders{ContentDisposition: attachment(name + ".zip")},
	}, nil
}

// GetNetworkInfo lists the non-loopback IPv4 addresses handhelds can reach.
func (s *Server) GetNetworkInfo(ctx context.Context, req api.GetNetworkInfoRequestObject) (api.GetNetworkInfoResponseObject, error) {
	info := api.NetworkInfo{Addresses: []string{}, Urls: []string{}, Port: s.opts.Port}
	ifaces, err := net.Interfaces()
	if err != nil {
		return nil, err
	}
	for _, iface := range ifaces {
		if iface.Flags&net.FlagUp == 0 || iface.Flags&net.FlagLoopback != 0 {
			continue
		}
		addrs, err := iface.Addrs()
		if err != nil {
			continue
		}
		for _, a := range addrs {
			ipnet, ok := a.(*net.IPNet)
			if !ok || ipnet.IP.To4() == nil || ipnet.IP.IsLoopback() {
				continue
			}
			ip := ipnet.IP.To4().String()
			info.Addresses = append(info.Addresses, ip)
			info.Urls = append(info.Urls, "http://"+net.JoinHostPort(ip, info.Port))
		}
	}
	return api.GetNetworkInfo200JSONResponse(info), nil
}
