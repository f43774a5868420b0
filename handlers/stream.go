package handlers

import (
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/patiponrmutl/BEGoldTrack/realtime"
)

// streamJSON เปิด SSE แล้วส่ง snapshot ชุดเต็มทันทีหนึ่งรอบ
// จากนั้นส่งใหม่ทุกครั้งที่มีสัญญาณจาก hub จนกว่า client จะตัดการเชื่อมต่อ
// cancel ของ subscription ถูกเรียกครั้งเดียวเสมอผ่าน defer
func streamJSON(c echo.Context, topic string, snapshot func() (any, error)) error {
	ch, cancel := realtime.Default.Subscribe(topic)
	defer cancel()

	res := c.Response()
	res.Header().Set(echo.HeaderContentType, "text/event-stream")
	res.Header().Set("Cache-Control", "no-cache")
	res.Header().Set("Connection", "keep-alive")
	res.WriteHeader(http.StatusOK)

	send := func() error {
		data, err := snapshot()
		if err != nil {
			return err
		}
		b, err := json.Marshal(data)
		if err != nil {
			return err
		}
		if _, err := fmt.Fprintf(res, "data: %s\n\n", b); err != nil {
			return err
		}
		res.Flush()
		return nil
	}

	if err := send(); err != nil {
		return err
	}
	for {
		select {
		case <-c.Request().Context().Done():
			return nil
		case <-ch:
			if err := send(); err != nil {
				return err
			}
		}
	}
}
