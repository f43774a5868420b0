package realtime

import "sync"

// Hub กระจายสัญญาณ "ข้อมูลเปลี่ยนแล้ว" ราย topic ให้ stream ที่เปิดค้างไว้
// สัญญาณไม่พก payload — ฝั่งรับต้อง query ชุดข้อมูลเต็มใหม่เอง
// (แทน onSnapshot ของ document DB เดิม)
type Hub struct {
	mu   sync.Mutex
	next int
	subs map[string]map[int]chan struct{}
}

// Default ใช้ร่วมกันทั้ง process (แบบเดียวกับ database.DB)
var Default = NewHub()

func NewHub() *Hub {
	return &Hub{subs: make(map[string]map[int]chan struct{})}
}

// Subscribe คืน channel สัญญาณกับ cancel
// สัญญา: subscribe 1 ครั้ง ต้อง cancel 1 ครั้งตอนเลิกฟัง (เรียกซ้ำเป็น no-op)
func (h *Hub) Subscribe(topic string) (<-chan struct{}, func()) {
	h.mu.Lock()
	defer h.mu.Unlock()

	id := h.next
	h.next++
	ch := make(chan struct{}, 1)
	if h.subs[topic] == nil {
		h.subs[topic] = make(map[int]chan struct{})
	}
	h.subs[topic][id] = ch

	var once sync.Once
	cancel := func() {
		once.Do(func() {
			h.mu.Lock()
			defer h.mu.Unlock()
			delete(h.subs[topic], id)
			if len(h.subs[topic]) == 0 {
				delete(h.subs, topic)
			}
		})
	}
	return ch, cancel
}

// Publish ไม่ block: subscriber ที่ยังมีสัญญาณค้างอยู่จะถูกรวบเป็นรอบเดียว
func (h *Hub) Publish(topic string) {
	h.mu.Lock()
	defer h.mu.Unlock()
	for _, ch := range h.subs[topic] {
		select {
		case ch <- struct{}{}:
		default:
		}
	}
}
